package registry

import (
	"testing"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry() *Registry {
	r := New()
	r.AddNode(types.NewNode("xapek").WithDescription("PLSM Lab"))
	r.AddNode(types.NewNode("vapmi").WithDescription("MacBook Pro"))
	r.AddNode(types.NewNode("bare"))
	r.AddTarget(types.NewTarget("dotfiles", "~/dotfiles/"))
	r.AddTarget(types.NewTarget("docs", "~/docs"))
	r.AddTarget(types.NewTarget("my.site", "/srv/www/my site"))
	return r
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, format := range Formats {
		t.Run(format.String(), func(t *testing.T) {
			original := sampleRegistry()

			first, err := original.Encode(format)
			require.NoError(t, err)

			decoded, err := Decode(format, first)
			require.NoError(t, err)

			assert.Equal(t, original.Nodes(), decoded.Nodes())
			assert.Equal(t, original.Targets(), decoded.Targets())

			second, err := decoded.Encode(format)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestEncodeEmptyRegistry(t *testing.T) {
	for _, format := range Formats {
		t.Run(format.String(), func(t *testing.T) {
			data, err := New().Encode(format)
			require.NoError(t, err)

			decoded, err := Decode(format, data)
			require.NoError(t, err)
			assert.Empty(t, decoded.Nodes())
			assert.Empty(t, decoded.Targets())
		})
	}
}

func TestEncodeOmitsNameField(t *testing.T) {
	r := New()
	r.AddNode(types.NewNode("vm1").WithDescription("lab"))

	data, err := r.Encode(FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":{"vm1":{"description":"lab"}},"targets":{}}`, string(data))
}

func TestDecodeMissingFieldsDefaultToEmpty(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "nodes:\n  vm1: {}\ntargets:\n  docs: {}\n"},
		{FormatJSON, `{"nodes":{"vm1":{}},"targets":{"docs":{}}}`},
		{FormatTOML, "[nodes.vm1]\n[targets.docs]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			r, err := Decode(tt.format, []byte(tt.data))
			require.NoError(t, err)

			node, ok := r.GetNode("vm1")
			require.True(t, ok)
			assert.Equal(t, "vm1", node.Name)
			assert.Empty(t, node.Description)

			target, ok := r.GetTarget("docs")
			require.True(t, ok)
			assert.Equal(t, "docs", target.Name)
			assert.Empty(t, target.Path)
		})
	}
}

func TestDecodeMissingCollections(t *testing.T) {
	r, err := Decode(FormatYAML, []byte("nodes:\n  vm1:\n    description: lab\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"vm1"}, r.NodeNames())
	assert.Empty(t, r.Targets())
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "nodes: [unclosed"},
		{FormatJSON, `{"nodes": `},
		{FormatTOML, "[nodes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			r, err := Decode(tt.format, []byte(tt.data))
			assert.Nil(t, r)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		})
	}
}

func TestDecodeLegacyJSONArrays(t *testing.T) {
	data := `{
  "nodes": [
    {"name": "xapek", "description": "PLSM Lab"},
    {"name": "vapmi", "description": "MacBook Pro"}
  ],
  "targets": [
    {"name": "dotfiles", "path": "~/dotfiles/"}
  ]
}`

	r, err := Decode(FormatJSON, []byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"vapmi", "xapek"}, r.NodeNames())
	node, _ := r.GetNode("xapek")
	assert.Equal(t, "PLSM Lab", node.Description)

	target, ok := r.GetTarget("dotfiles")
	require.True(t, ok)
	assert.Equal(t, "~/dotfiles/", target.Path)

	encoded, err := r.Encode(FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "[")
}
