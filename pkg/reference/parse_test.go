package reference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/reference"
)

const tablesYAML = `
domestic: us
regions: [il, WI]
catalog:
  cis216: Applied Object-Oriented Programming
`

const tablesJSON = `{"domestic":"US","regions":["IL","WI"],"catalog":{"CIS216":"Applied Object-Oriented Programming"}}`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	tables, err := reference.ParseYAML([]byte(tablesYAML))
	require.NoError(t, err)
	assert.Equal(t, "US", tables.Domestic())
	assert.Equal(t, []string{"IL", "WI"}, tables.Regions())
	title, ok := tables.CourseTitle("CIS216")
	assert.True(t, ok)
	assert.Equal(t, "Applied Object-Oriented Programming", title)

	t.Run("defaults domestic", func(t *testing.T) {
		t.Parallel()
		tables, err := reference.ParseYAML([]byte("regions: [IL]"))
		require.NoError(t, err)
		assert.Equal(t, reference.DefaultDomestic, tables.Domestic())
	})

	t.Run("requires regions", func(t *testing.T) {
		t.Parallel()
		_, err := reference.ParseYAML([]byte("domestic: US"))
		assert.ErrorIs(t, err, reference.ErrEmptyTables)
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()
		_, err := reference.ParseYAML([]byte("regions: {"))
		assert.ErrorIs(t, err, reference.ErrParse)
	})
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	tables, err := reference.ParseJSON([]byte(tablesJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"IL", "WI"}, tables.Regions())

	_, err = reference.ParseJSON([]byte(`{"regions":["IL"],"extra":true}`))
	assert.ErrorIs(t, err, reference.ErrParse)

	_, err = reference.ParseJSON([]byte(`{"regions":[]}`))
	assert.ErrorIs(t, err, reference.ErrEmptyTables)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "tables.yml")
	jsonPath := filepath.Join(dir, "tables.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(tablesYAML), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(tablesJSON), 0o600))

	fromYAML, err := reference.LoadFile(yamlPath)
	require.NoError(t, err)
	fromJSON, err := reference.LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML.Regions(), fromJSON.Regions())
	assert.Equal(t, fromYAML.Catalog(), fromJSON.Catalog())

	_, err = reference.LoadFile(filepath.Join(dir, "tables.toml"))
	assert.ErrorIs(t, err, reference.ErrUnsupportedFormat)

	_, err = reference.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, reference.ErrReadFile)
}
