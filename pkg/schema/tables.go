package schema

// Tables is an insertion-ordered collection of tables keyed by name.
// It is not safe for concurrent use.
type Tables struct {
	order  []string
	tables map[string]*TableMeta
}

// NewTables returns an empty collection.
func NewTables() *Tables {
	return &Tables{tables: make(map[string]*TableMeta)}
}

// Get returns the named table.
func (ts *Tables) Get(name string) (*TableMeta, bool) {
	t, ok := ts.tables[name]
	return t, ok
}

// Put stores t under its name. An existing table with that name is
// replaced and keeps its original position. Put reports whether a table
// was replaced.
func (ts *Tables) Put(t *TableMeta) bool {
	_, replaced := ts.tables[t.Name]
	if !replaced {
		ts.order = append(ts.order, t.Name)
	}
	ts.tables[t.Name] = t
	return replaced
}

// Ensure returns the named table, creating a bare one if needed.
func (ts *Tables) Ensure(name string) *TableMeta {
	if t, ok := ts.tables[name]; ok {
		return t
	}
	t := NewTableMeta(name)
	ts.Put(t)
	return t
}

// Len returns the number of tables.
func (ts *Tables) Len() int {
	return len(ts.order)
}

// Names returns table names in insertion order.
func (ts *Tables) Names() []string {
	return append([]string(nil), ts.order...)
}

// List returns the tables in insertion order.
func (ts *Tables) List() []*TableMeta {
	out := make([]*TableMeta, 0, len(ts.order))
	for _, name := range ts.order {
		out = append(out, ts.tables[name])
	}
	return out
}

// Prune removes every table and column that the catalog never confirmed.
// It returns the number of tables and columns removed.
func (ts *Tables) Prune() (tables, columns int) {
	order := ts.order[:0]
	for _, name := range ts.order {
		t := ts.tables[name]
		if !t.IsInDBSchema {
			delete(ts.tables, name)
			tables++
			continue
		}
		columns += t.PruneColumns()
		order = append(order, name)
	}
	ts.order = order
	return tables, columns
}
