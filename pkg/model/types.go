// Package model compiles annotation schemas into concrete PostgreSQL
// table definitions and memoizes them per (dataset, table, version).
//
// The package is pure: it performs no I/O and holds no hidden global
// state. The one shared mutable resource, Store, is created explicitly
// by the caller and injected where needed.
package model

// ColumnType tags the PostgreSQL type of an emitted column.
type ColumnType string

const (
	TypeNumeric  ColumnType = "NUMERIC"
	TypeInteger  ColumnType = "INTEGER"
	TypeFloat    ColumnType = "DOUBLE PRECISION"
	TypeString   ColumnType = "VARCHAR"
	TypeBoolean  ColumnType = "BOOLEAN"
	TypeGeometry ColumnType = "GEOMETRY"
)

// Column is one emitted column of a compiled table.
type Column struct {
	// Name is the fully qualified column name; nested field paths are
	// joined with underscores.
	Name string

	// Type is the column type tag.
	Type ColumnType

	// GeometryTag carries the PostGIS geometry subtype, e.g. "POINTZ",
	// when Type is TypeGeometry. The compiler treats it as opaque.
	GeometryTag string

	// PrimaryKey marks the id column. IDs are assigned externally, so
	// the column never auto-increments.
	PrimaryKey bool

	// Indexed requests a secondary index.
	Indexed bool

	// ForeignKey is a "table.column" target, empty when absent.
	ForeignKey string
}

// Table is a compiled, storage-ready table definition. Tables are
// created once by Compile, stored in a Store, and never mutated
// afterwards.
type Table struct {
	// Name is the canonical "{dataset}_{table}_v{version}" name.
	Name string

	// Dataset the table belongs to.
	Dataset string

	// Version of the table within the dataset.
	Version int

	// Concrete marks annotation tables that do not share a polymorphic
	// identity across datasets. The root entity table is not concrete.
	Concrete bool

	// Columns in emission order, id first.
	Columns []Column
}

// Column returns the column with the given name, or false when the
// table has no such column.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
