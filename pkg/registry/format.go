package registry

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/eriksync/pkg/errors"
)

// Format is a textual encoding of the registry file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DefaultFormat is used whenever no valid format is given
const DefaultFormat = FormatYAML

// Formats lists the supported formats in lookup order
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON}

// String returns the format token
func (f Format) String() string {
	return string(f)
}

// Ext returns the file extension for the format, including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

func lookupFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// ParseFormat maps a user supplied token to a Format. Unknown tokens fall
// back to YAML.
func ParseFormat(s string) Format {
	if f, ok := lookupFormat(s); ok {
		return f
	}
	return DefaultFormat
}

// FormatFromPath infers the format from the file extension. A missing or
// unknown extension is a CONFIG_PARSE error.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrConfigParse, "%s has no extension", path).
			WithDetail("path", path)
	}

	f, ok := lookupFormat(ext)
	if !ok {
		return "", errors.Newf(errors.ErrConfigParse, "unsupported config format %q", ext).
			WithDetail("path", path)
	}
	return f, nil
}
