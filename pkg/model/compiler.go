package model

import (
	"github.com/emannotation/emdb/pkg/annotation"
)

// Compile builds the table definition for one annotation schema.
// Columns appear in the schema's declared field order after the id
// primary key. Reference schemas additionally gain a target_id foreign
// key into "{dataset}_{reference_type}.id"; if ordinary flattening
// already produced a target_id column, the foreign-key version
// replaces it in place (last wins).
func Compile(
	dataset string,
	table string,
	sch annotation.Schema,
	version int,
) (*Table, error) {
	t := &Table{
		Name:     FormatTableName(dataset, table, version),
		Dataset:  dataset,
		Version:  version,
		Concrete: true,
		Columns: []Column{
			{Name: "id", Type: TypeNumeric, PrimaryKey: true},
		},
	}

	for _, nf := range sch.Fields {
		cols, err := flattenField(nf.Name, nf.Field, dataset, version)
		if err != nil {
			return nil, err
		}
		t.Columns = append(t.Columns, cols...)
	}

	if sch.Reference {
		tf, ok := sch.TargetField()
		if !ok || tf.ReferenceType == "" {
			return nil, InvalidSchemaFieldError("target_id",
				"reference schema declares no target entity type")
		}
		fk := dataset + "_" + tf.ReferenceType + ".id"
		t.Columns = append(t.Columns, Column{
			Name:       "target_id",
			Type:       TypeInteger,
			ForeignKey: fk,
		})
		t.Columns = dedupeColumns(t.Columns)
	}

	return t, nil
}

// CompileRoot builds the root entity table for a dataset: id only,
// externally assigned. Every annotation table with bound spatial
// points depends on it through root_id foreign keys, so dataset
// assembly always produces it first.
func CompileRoot(dataset string, version int) *Table {
	return &Table{
		Name:    FormatTableName(dataset, RootTableName, version),
		Dataset: dataset,
		Version: version,
		Columns: []Column{
			{Name: "id", Type: TypeNumeric, PrimaryKey: true},
		},
	}
}

// dedupeColumns collapses columns sharing a name. The later
// definition wins but keeps the position of the first occurrence, so
// column order stays reproducible.
func dedupeColumns(cols []Column) []Column {
	seen := make(map[string]int, len(cols))
	res := cols[:0]
	for _, c := range cols {
		if i, ok := seen[c.Name]; ok {
			res[i] = c
			continue
		}
		seen[c.Name] = len(res)
		res = append(res, c)
	}
	return res
}
