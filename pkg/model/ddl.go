package model

import (
	"fmt"
	"strings"
)

// DDLGenerator defines how compiled models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns an empty slice if no indexes are needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// TableName implements DDLGenerator.
func (t *Table) TableName() string {
	return t.Name
}

// TableDDL renders the CREATE TABLE statement, with foreign-key
// constraints after the column list.
func (t *Table) TableDDL() string {
	var columns []string
	var constraints []string

	for _, c := range t.Columns {
		columns = append(columns,
			fmt.Sprintf("    %s %s", c.Name, columnDDL(c)))
		if c.ForeignKey == "" {
			continue
		}
		refTable, refColumn := splitForeignKey(c.ForeignKey)
		constraints = append(constraints, fmt.Sprintf(
			"    FOREIGN KEY (%s) REFERENCES %s (%s)",
			c.Name, refTable, refColumn))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		t.Name,
		strings.Join(append(columns, constraints...), ",\n"))
}

// IndexDDL renders one CREATE INDEX per indexed column. Geometry
// columns get GIST indexes; everything else uses the default btree.
func (t *Table) IndexDDL() []string {
	var res []string
	for _, c := range t.Columns {
		if !c.Indexed {
			continue
		}
		using := ""
		if c.Type == TypeGeometry {
			using = " USING GIST"
		}
		res = append(res, fmt.Sprintf(
			"CREATE INDEX idx_%s_%s ON %s%s (%s);",
			t.Name, c.Name, t.Name, using, c.Name))
	}
	return res
}

func columnDDL(c Column) string {
	typ := string(c.Type)
	if c.Type == TypeGeometry {
		// 3-D geometry; the tag itself (e.g. POINTZ) carries the
		// dimensionality.
		typ = fmt.Sprintf("GEOMETRY(%s)", c.GeometryTag)
	}
	if c.PrimaryKey {
		typ += " PRIMARY KEY"
	}
	return typ
}

func splitForeignKey(fk string) (table, column string) {
	i := strings.LastIndex(fk, ".")
	if i < 0 {
		return fk, "id"
	}
	return fk[:i], fk[i+1:]
}
