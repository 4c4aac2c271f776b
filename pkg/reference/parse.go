package reference

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a tables file.
type document struct {
	Domestic string            `json:"domestic" yaml:"domestic"`
	Regions  []string          `json:"regions" yaml:"regions"`
	Catalog  map[string]string `json:"catalog" yaml:"catalog"`
}

func (d document) tables() (Tables, error) {
	t := New(d.Domestic, d.Regions, d.Catalog)
	if len(t.regions) == 0 {
		return Tables{}, ErrEmptyTables
	}
	if t.domestic == "" {
		t.domestic = DefaultDomestic
	}
	return t, nil
}

// ParseYAML decodes tables from a YAML document.
func ParseYAML(data []byte) (Tables, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tables{}, errors.Join(ErrParse, err)
	}
	return doc.tables()
}

// ParseJSON decodes tables from a JSON document. Unknown keys are rejected.
func ParseJSON(data []byte) (Tables, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Tables{}, errors.Join(ErrParse, err)
	}
	return doc.tables()
}

// LoadFile reads tables from a .yaml, .yml or .json file.
func LoadFile(path string) (Tables, error) {
	var parse func([]byte) (Tables, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return Tables{}, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, errors.Join(ErrReadFile, err)
	}
	return parse(data)
}
