package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// DecodeJSON reads a JSON array of records.
func DecodeJSON(r io.Reader) ([]record.Raw, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var docs []map[string]any
	if err := dec.Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return []record.Raw{}, nil
		}
		return nil, errors.Join(ErrDecode, err)
	}
	return toRaw(docs), nil
}

// DecodeYAML reads a YAML sequence of records.
func DecodeYAML(r io.Reader) ([]record.Raw, error) {
	var docs []map[string]any
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return []record.Raw{}, nil
		}
		return nil, errors.Join(ErrDecode, err)
	}
	return toRaw(docs), nil
}

// ReadFile decodes records from a .json, .yaml or .yml file.
func ReadFile(path string) ([]record.Raw, error) {
	var decode func(io.Reader) ([]record.Raw, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, ErrUnsupportedFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer f.Close()

	return decode(f)
}

func toRaw(docs []map[string]any) []record.Raw {
	out := make([]record.Raw, len(docs))
	for i, d := range docs {
		out[i] = record.Raw(d)
	}
	return out
}
