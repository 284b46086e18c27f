package docs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/schema"
)

func hpdDatasets() []schema.DatasetMeta {
	t := schema.NewTableMeta("hpd_violations")
	t.Dataset = "hpd"
	t.SetColumn(&schema.ColumnMeta{Name: "bbl", DataType: schema.TypeText, Position: 1})
	t.SetColumn(&schema.ColumnMeta{
		Name:        "tags",
		DataType:    schema.TypeArray,
		DataSubtype: schema.TypeText,
		IsNullable:  true,
		Position:    2,
	})
	return []schema.DatasetMeta{{Name: "hpd", Tables: []*schema.TableMeta{t}}}
}

func render(t *testing.T, r *Renderer, datasets []schema.DatasetMeta) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, datasets))
	return buf.String()
}

func TestRenderCatalogOnlyTable(t *testing.T) {
	out := render(t, NewRenderer(), hpdDatasets())
	lines := strings.Split(out, "\n")

	assert.Equal(t, "# "+Title, lines[0])
	assert.Contains(t, out, NullableNote)
	assert.Contains(t, lines, "## Dataset `hpd`")
	assert.Contains(t, lines, "### Table `hpd_violations`")
	assert.Contains(t, lines, ColumnsLeadIn)
	assert.Contains(t, lines, "* `bbl` - A required text value.")
	assert.Contains(t, lines, "* `tags` - A text array value.")

	assert.NotContains(t, out, "From ")
	assert.NotContains(t, out, "> ")
	assert.NotContains(t, out, "## "+ContentsTitle)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderOrder(t *testing.T) {
	out := render(t, NewRenderer(), hpdDatasets())

	title := strings.Index(out, "# "+Title)
	dataset := strings.Index(out, "## Dataset `hpd`")
	table := strings.Index(out, "### Table `hpd_violations`")
	lead := strings.Index(out, ColumnsLeadIn)
	bbl := strings.Index(out, "`bbl`")
	tags := strings.Index(out, "`tags`")

	assert.True(t, title < dataset && dataset < table && table < lead && lead < bbl && bbl < tags)
}

func TestRenderDescriptions(t *testing.T) {
	table := schema.NewTableMeta("pluto_18v1")
	table.Description = "Extensive land use and geographic data at the tax lot level."
	table.DescriptionSource = "NYC Open Data"
	table.SourceURL = "https://data.cityofnewyork.us/api/views/abcd-1234"
	table.SetColumn(&schema.ColumnMeta{
		Name:        "borough",
		DataType:    schema.TypeText,
		IsNullable:  true,
		Description: "The borough the tax lot is in.",
	})
	table.SetColumn(&schema.ColumnMeta{Name: "numfloors", DataType: schema.TypeInteger, IsNullable: true})

	out := render(t, NewRenderer(), []schema.DatasetMeta{{Name: "pluto", Tables: []*schema.TableMeta{table}}})
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines, "From [NYC Open Data](https://data.cityofnewyork.us/api/views/abcd-1234):")
	assert.Contains(t, lines, "> Extensive land use and geographic data at the tax lot level.")
	assert.Contains(t, lines, "* `borough` - A text value.")
	assert.Contains(t, lines, "  > The borough the tax lot is in.")
	assert.Contains(t, lines, "* `numfloors` - An integer value.")

	attribution := strings.Index(out, "From [NYC Open Data]")
	lead := strings.Index(out, ColumnsLeadIn)
	assert.Less(t, attribution, lead)
	assert.Less(t, strings.Index(out, "`borough`"), strings.Index(out, "  > The borough"))
}

func TestRenderIndex(t *testing.T) {
	a := schema.NewTableMeta("hpd_violations")
	a.SetColumn(&schema.ColumnMeta{Name: "bbl", DataType: schema.TypeText})
	b := schema.NewTableMeta("dob_complaints")
	b.SetColumn(&schema.ColumnMeta{Name: "bin", DataType: schema.TypeText})

	datasets := []schema.DatasetMeta{
		{Name: "hpd", Tables: []*schema.TableMeta{a}},
		{Name: "dob", Tables: []*schema.TableMeta{b}},
	}
	out := render(t, &Renderer{Index: true}, datasets)
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines, "## "+ContentsTitle)
	assert.Contains(t, lines, "* [Dataset `hpd`](#dataset-hpd)")
	assert.Contains(t, lines, "  * [Table `hpd_violations`](#table-hpd_violations)")
	assert.Contains(t, lines, "* [Dataset `dob`](#dataset-dob)")
	assert.Contains(t, lines, "  * [Table `dob_complaints`](#table-dob_complaints)")
	assert.Less(t, strings.Index(out, "## "+ContentsTitle), strings.Index(out, "## Dataset `hpd`"))
}

func TestRenderArrayWithoutElementType(t *testing.T) {
	datasets := hpdDatasets()
	tags, _ := datasets[0].Tables[0].Column("tags")
	tags.DataSubtype = ""

	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, datasets)
	require.Error(t, err)
	assert.True(t, errors.IsInconsistent(err))
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestColumnSummary(t *testing.T) {
	tests := []struct {
		name string
		col  schema.ColumnMeta
		want string
	}{
		{"required text", schema.ColumnMeta{Name: "bbl", DataType: schema.TypeText}, "`bbl` - A required text value."},
		{"nullable date", schema.ColumnMeta{Name: "issued", DataType: schema.TypeDate, IsNullable: true}, "`issued` - A date value."},
		{"nullable integer", schema.ColumnMeta{Name: "floors", DataType: schema.TypeInteger, IsNullable: true}, "`floors` - An integer value."},
		{"required integer", schema.ColumnMeta{Name: "id", DataType: schema.TypeInteger}, "`id` - A required integer value."},
		{
			"smallint array",
			schema.ColumnMeta{Name: "codes", DataType: schema.TypeArray, DataSubtype: schema.TypeSmallint, IsNullable: true},
			"`codes` - A smallint array value.",
		},
		{
			"time",
			schema.ColumnMeta{Name: "opens", DataType: schema.TypeTime, IsNullable: true},
			"`opens` - A time without time zone value.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColumnSummary("t", &tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ColumnSummary("t", &schema.ColumnMeta{Name: "x"})
	assert.True(t, errors.IsInconsistent(err))
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "dataset-hpd_violations", Anchor("Dataset `hpd_violations`"))
	assert.Equal(t, "table-pluto_18v1", Anchor("Table `PLUTO_18v1`"))
	assert.Equal(t, "contents", Anchor("Contents"))
}

func TestWrap(t *testing.T) {
	t.Run("first line prefix", func(t *testing.T) {
		lines := Wrap("one two three four five six", 14, "* ", "  ")
		assert.Equal(t, []string{"* one two", "  three four", "  five six"}, lines)
	})

	t.Run("hyphens are not broken", func(t *testing.T) {
		lines := Wrap("alpha well-known-hyphenated-term omega", 20, "> ", "> ")
		assert.Contains(t, lines, "> well-known-hyphenated-term")
		for _, l := range lines {
			assert.False(t, strings.HasSuffix(l, "-"))
		}
	})

	t.Run("long words are kept whole", func(t *testing.T) {
		lines := Wrap("a supercalifragilisticexpialidocious b", 10, "", "")
		assert.Equal(t, []string{"a", "supercalifragilisticexpialidocious", "b"}, lines)
	})

	t.Run("whitespace collapses", func(t *testing.T) {
		assert.Equal(t, []string{"> a b c"}, Wrap("  a\n\tb   c ", 80, "> ", "> "))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Wrap("   ", 80, "> ", "> "))
	})
}

func TestRendererWidth(t *testing.T) {
	assert.Equal(t, 80, (&Renderer{}).width())
	assert.Equal(t, 20, (&Renderer{Width: 5}).width())
	assert.Equal(t, 100, (&Renderer{Width: 100}).width())
}
