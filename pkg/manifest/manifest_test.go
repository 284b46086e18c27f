package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

const sampleManifest = `
pluto_18v1:
  files:
    - url: https://data.cityofnewyork.us/api/views/abcd-1234/rows.csv?accessType=DOWNLOAD
      dest: pluto_18v1.zip
  schema:
    table_name: pluto_18v1
    fields:
      Borough: text
hpd_violations:
  files:
    - url: https://example.com/violations.csv
      dest: hpd_violations.csv
    - url: https://data.cityofnewyork.us/api/views/wvxf-dwi5/rows.csv
      dest: sub/dir/hpd_open_violations.csv
  schema:
    - table_name: hpd_violations
    - table_name: hpd_open_violations
acris:
  files: []
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest), "datasets.yml")
	require.NoError(t, err)

	require.Len(t, m.Datasets, 3)
	assert.Equal(t, "pluto_18v1", m.Datasets[0].Name)
	assert.Equal(t, "hpd_violations", m.Datasets[1].Name)
	assert.Equal(t, "acris", m.Datasets[2].Name)

	t.Run("single schema object becomes a list", func(t *testing.T) {
		assert.Equal(t, TableDecls{{TableName: "pluto_18v1"}}, m.Datasets[0].Schema)
	})

	t.Run("schema list keeps order", func(t *testing.T) {
		assert.Equal(t, TableDecls{
			{TableName: "hpd_violations"},
			{TableName: "hpd_open_violations"},
		}, m.Datasets[1].Schema)
	})

	t.Run("missing schema is empty", func(t *testing.T) {
		assert.Empty(t, m.Datasets[2].Schema)
	})

	t.Run("files", func(t *testing.T) {
		files := m.Datasets[1].Files
		require.Len(t, files, 2)
		assert.Equal(t, "https://example.com/violations.csv", files[0].URL)
		assert.Equal(t, "hpd_violations", files[0].Stem())
		assert.Equal(t, "hpd_open_violations", files[1].Stem())
		assert.Equal(t, 3, m.FileCount())
	})

	t.Run("lookup", func(t *testing.T) {
		ds, ok := m.Dataset("hpd_violations")
		require.True(t, ok)
		assert.Len(t, ds.Files, 2)
		_, ok = m.Dataset("nope")
		assert.False(t, ok)
	})
}

func TestFileStem(t *testing.T) {
	tests := map[string]string{
		"pluto_18v1.zip":          "pluto_18v1",
		"data/rentstab.csv":       "rentstab",
		"archive.tar.gz":          "archive.tar",
		"noextension":             "noextension",
		"windows\\path\\file.csv": "file",
	}
	for dest, want := range tests {
		assert.Equal(t, want, File{Dest: dest}.Stem(), "dest %q", dest)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{
			name:  "malformed yaml",
			input: "a: [unterminated",
			check: func(err error) bool {
				var pe *errors.ParseError
				return errors.As(err, &pe)
			},
		},
		{
			name:  "scalar schema",
			input: "ds:\n  files: []\n  schema: just-a-string\n",
			check: func(err error) bool {
				var pe *errors.ParseError
				return errors.As(err, &pe)
			},
		},
		{
			name:  "missing dest",
			input: "ds:\n  files:\n    - url: https://example.com/x.csv\n",
			check: errors.IsValidationError,
		},
		{
			name:  "missing table name",
			input: "ds:\n  schema:\n    - fields: {}\n",
			check: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), "datasets.yml")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type: %v", err)
		})
	}
}
