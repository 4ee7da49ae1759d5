// Package depgraph builds and queries the directed dependency graph of
// warehouse views: vertices are fully-qualified view/table names, edges
// point from a dependency to the view that depends on it.
package depgraph

import "strings"

// TableReference is an immutable 1–3 part name (table[, schema[, catalog]])
// extracted from a SQL statement.
type TableReference struct {
	Catalog string
	Schema  string
	Table   string
}

// NewTableReference builds a TableReference from the parts of a qualified
// name, right-aligned: a single part is Table, two are Schema.Table, three
// are Catalog.Schema.Table.
func NewTableReference(parts []string) TableReference {
	var ref TableReference
	switch len(parts) {
	case 1:
		ref.Table = parts[0]
	case 2:
		ref.Schema, ref.Table = parts[0], parts[1]
	case 3:
		ref.Catalog, ref.Schema, ref.Table = parts[0], parts[1], parts[2]
	default:
		if len(parts) > 3 {
			n := len(parts)
			ref.Catalog, ref.Schema, ref.Table = parts[n-3], parts[n-2], parts[n-1]
		}
	}
	return ref
}

// Label is the canonical `[catalog.][schema.]table` vertex label this
// reference resolves to.
func (r TableReference) Label() string {
	var b strings.Builder
	if r.Catalog != "" {
		b.WriteString(r.Catalog)
		b.WriteByte('.')
	}
	if r.Schema != "" {
		b.WriteString(r.Schema)
		b.WriteByte('.')
	}
	b.WriteString(r.Table)
	return b.String()
}
