package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

func TestParseDataType(t *testing.T) {
	for _, dt := range DataTypes() {
		got, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	t.Run("exact match only", func(t *testing.T) {
		for _, s := range []string{"Text", "array", "character varying", "time", ""} {
			_, err := ParseDataType(s)
			assert.Error(t, err, "type %q", s)
			assert.True(t, errors.IsValidationError(err))
		}
	})
}

func TestDataTypeDisplay(t *testing.T) {
	assert.Equal(t, "array", TypeArray.Display())
	assert.Equal(t, "text", TypeText.Display())
	assert.Equal(t, "time without time zone", TypeTime.Display())
	assert.True(t, TypeArray.IsArray())
	assert.False(t, TypeJSON.IsArray())
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  some text", "some text."},
		{"Already done.", "Already done."},
		{"", ""},
		{"   \n\t", ""},
		{"Trailing space.  ", "Trailing space."},
		{"Café inspections", "Café inspections."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDescription(tt.in), "input %q", tt.in)
	}
}

func TestTableMetaColumns(t *testing.T) {
	table := NewTableMeta("hpd_violations")

	bbl := table.EnsureColumn("bbl")
	bbl.VerboseName = "BBL"
	assert.Same(t, bbl, table.EnsureColumn("bbl"))

	table.SetColumn(&ColumnMeta{Name: "tags"})
	table.SetColumn(&ColumnMeta{Name: "bbl", VerboseName: "Borough Block Lot"})

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "bbl", table.Columns()[0].Name)
	assert.Equal(t, "Borough Block Lot", table.Columns()[0].VerboseName)

	_, ok := table.Column("missing")
	assert.False(t, ok)
}

func TestTableMetaPruneColumns(t *testing.T) {
	table := NewTableMeta("pluto_18v1")
	table.SetColumn(&ColumnMeta{Name: "remote_only"})
	table.SetColumn(&ColumnMeta{Name: "zonedist1", IsInDBSchema: true, Position: 3})
	table.SetColumn(&ColumnMeta{Name: "bbl", IsInDBSchema: true, Position: 1})
	table.SetColumn(&ColumnMeta{Name: "address", IsInDBSchema: true, Position: 2})

	removed := table.PruneColumns()

	assert.Equal(t, 1, removed)
	var names []string
	for _, c := range table.Columns() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"bbl", "address", "zonedist1"}, names)

	c, ok := table.Column("zonedist1")
	require.True(t, ok)
	assert.Equal(t, 3, c.Position)
	_, ok = table.Column("remote_only")
	assert.False(t, ok)
}

func TestTables(t *testing.T) {
	ts := NewTables()

	first := NewTableMeta("pluto_18v1")
	first.VerboseName = "first"
	assert.False(t, ts.Put(first))
	ts.Ensure("hpd_violations")

	second := NewTableMeta("pluto_18v1")
	second.VerboseName = "second"
	assert.True(t, ts.Put(second))

	got, ok := ts.Get("pluto_18v1")
	require.True(t, ok)
	assert.Equal(t, "second", got.VerboseName)
	assert.Equal(t, []string{"pluto_18v1", "hpd_violations"}, ts.Names())
	assert.Equal(t, 2, ts.Len())
}

func TestTablesPrune(t *testing.T) {
	ts := NewTables()

	kept := ts.Ensure("hpd_violations")
	kept.IsInDBSchema = true
	kept.SetColumn(&ColumnMeta{Name: "bbl", IsInDBSchema: true, Position: 1})
	kept.SetColumn(&ColumnMeta{Name: "stale"})

	ts.Ensure("remote_only_table").SetColumn(&ColumnMeta{Name: "x"})

	tables, columns := ts.Prune()

	assert.Equal(t, 1, tables)
	assert.Equal(t, 1, columns)
	assert.Equal(t, []string{"hpd_violations"}, ts.Names())
	for _, table := range ts.List() {
		assert.True(t, table.IsInDBSchema)
		for _, c := range table.Columns() {
			assert.True(t, c.IsInDBSchema)
		}
	}
}
