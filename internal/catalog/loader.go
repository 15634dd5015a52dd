package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GrowRoom_Go/internal/validation"
)

//go:embed catalog.schema.json
var schemaJSON []byte

// Format is a catalog file encoding
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Loader reads catalog files and validates them before building a Catalog
type Loader interface {
	LoadFile(path string) (*Catalog, error)
	Load(data []byte, format Format) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.AddSchema(SchemaName, schemaJSON); err != nil {
		return nil, err
	}
	return &catalogLoader{schemaValidator: v}, nil
}

// FormatForPath picks the format from the file extension
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(ErrMsgUnsupportedFormat, ext)
	}
}

// LoadFile reads a JSON or YAML catalog from disk
func (l *catalogLoader) LoadFile(path string) (*Catalog, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	c, err := l.Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load validates raw catalog data against the schema, then decodes it
func (l *catalogLoader) Load(data []byte, format Format) (*Catalog, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgConvertYAMLFailed, err)
		}
		data = converted
	}

	if err := l.schemaValidator.ValidateBytes(SchemaName, data); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, format, err)
	}

	var file Catalog
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	c, err := New(file.Phases, file.Strains)
	if err != nil {
		return nil, err
	}
	c.Version = file.Version
	return c, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// EncodeYAML renders a catalog in the format LoadFile reads
func EncodeYAML(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}
