package schema

import "sort"

// ColumnMeta describes one database column.
type ColumnMeta struct {
	Name        string   `json:"name" yaml:"name"`
	VerboseName string   `json:"verbose_name,omitempty" yaml:"verbose_name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	DataType    DataType `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	// DataSubtype is the element type; set only when DataType is TypeArray.
	DataSubtype DataType `json:"data_subtype,omitempty" yaml:"data_subtype,omitempty"`
	IsNullable  bool     `json:"is_nullable" yaml:"is_nullable"`
	// Position is the catalog ordinal position, zero until the catalog confirms the column.
	Position int `json:"position" yaml:"position"`

	IsInDBSchema bool `json:"-" yaml:"-"`
}

// TableMeta describes one database table and its columns in catalog order.
type TableMeta struct {
	Name              string `json:"name" yaml:"name"`
	VerboseName       string `json:"verbose_name,omitempty" yaml:"verbose_name,omitempty"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionSource string `json:"description_source,omitempty" yaml:"description_source,omitempty"`
	SourceURL         string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Dataset           string `json:"dataset,omitempty" yaml:"dataset,omitempty"`

	IsInDBSchema bool `json:"-" yaml:"-"`

	columns []*ColumnMeta
	index   map[string]int
}

// NewTableMeta returns an empty table named name.
func NewTableMeta(name string) *TableMeta {
	return &TableMeta{
		Name:  name,
		index: make(map[string]int),
	}
}

// Column returns the named column.
func (t *TableMeta) Column(name string) (*ColumnMeta, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// SetColumn stores c, replacing any column with the same name in place.
func (t *TableMeta) SetColumn(c *ColumnMeta) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[c.Name]; ok {
		t.columns[i] = c
		return
	}
	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
}

// EnsureColumn returns the named column, creating a bare one if needed.
func (t *TableMeta) EnsureColumn(name string) *ColumnMeta {
	if c, ok := t.Column(name); ok {
		return c
	}
	c := &ColumnMeta{Name: name}
	t.SetColumn(c)
	return c
}

// Columns returns the columns in order.
func (t *TableMeta) Columns() []*ColumnMeta {
	return t.columns
}

// Len returns the number of columns.
func (t *TableMeta) Len() int {
	return len(t.columns)
}

// PruneColumns drops columns the catalog never confirmed and orders the
// survivors by catalog position. It returns the number of columns removed.
func (t *TableMeta) PruneColumns() int {
	kept := t.columns[:0]
	for _, c := range t.columns {
		if c.IsInDBSchema {
			kept = append(kept, c)
		}
	}
	removed := len(t.columns) - len(kept)
	for i := len(kept); i < len(t.columns); i++ {
		t.columns[i] = nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Position < kept[j].Position
	})

	t.columns = kept
	t.index = make(map[string]int, len(kept))
	for i, c := range kept {
		t.index[c.Name] = i
	}
	return removed
}

// DatasetMeta is a named, ordered grouping of tables.
type DatasetMeta struct {
	Name   string       `json:"name" yaml:"name"`
	Tables []*TableMeta `json:"tables" yaml:"tables"`
}
