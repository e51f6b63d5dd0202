package registry

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/arthur-debert/eriksync/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// document is the persisted shape of a Registry
type document struct {
	Nodes   map[string]types.Node   `json:"nodes" yaml:"nodes" toml:"nodes"`
	Targets map[string]types.Target `json:"targets" yaml:"targets" toml:"targets"`
}

// legacyDocument is the array based JSON layout written by early releases
type legacyDocument struct {
	Nodes []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"nodes"`
	Targets []struct {
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"targets"`
}

// Encode serializes the registry in the given format
func (r *Registry) Encode(format Format) ([]byte, error) {
	doc := document{
		Nodes:   r.nodes.Map(),
		Targets: r.targets.Map(),
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode registry as %s", format)
	}
	return data, nil
}

// Decode parses data in the given format into a new Registry. Record names
// are taken from the map keys.
func Decode(format Format, data []byte) (*Registry, error) {
	doc, err := decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s registry", format)
	}
	return fromDocument(doc), nil
}

func decode(format Format, data []byte) (document, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	return doc, err
}

func fromDocument(doc document) *Registry {
	r := New()
	for name, node := range doc.Nodes {
		node.Name = name
		r.AddNode(node)
	}
	for name, target := range doc.Targets {
		target.Name = name
		r.AddTarget(target)
	}
	return r
}

func decodeJSON(data []byte) (document, error) {
	var raw struct {
		Nodes   json.RawMessage `json:"nodes"`
		Targets json.RawMessage `json:"targets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return document{}, err
	}

	if isJSONArray(raw.Nodes) || isJSONArray(raw.Targets) {
		return decodeLegacyJSON(data)
	}

	var doc document
	err := json.Unmarshal(data, &doc)
	return doc, err
}

func decodeLegacyJSON(data []byte) (document, error) {
	logger := logging.GetLogger("registry")
	logger.Warn().Msg("Reading deprecated array based registry; it will be rewritten as a map on next save")

	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return document{}, err
	}

	doc := document{
		Nodes:   make(map[string]types.Node, len(legacy.Nodes)),
		Targets: make(map[string]types.Target, len(legacy.Targets)),
	}
	for _, n := range legacy.Nodes {
		doc.Nodes[n.Name] = types.Node{Name: n.Name, Description: n.Description}
	}
	for _, t := range legacy.Targets {
		doc.Targets[t.Name] = types.Target{Name: t.Name, Path: t.Path}
	}
	return doc, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
