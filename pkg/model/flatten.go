package model

import (
	"github.com/emannotation/emdb/pkg/annotation"
)

// flattenField translates one schema field into zero or more column
// specifications. Dropped fields emit nothing; scalar fields emit one
// column; nested fields emit one column per subfield with the field
// name as prefix.
//
// Two subfield names are special: a postgis_geometry tag overrides the
// subfield's scalar kind with a 3-D geometry column, and root_id gains
// a foreign key into the dataset's root entity table for the same
// version.
func flattenField(
	name string,
	f annotation.Field,
	dataset string,
	version int,
) ([]Column, error) {
	if f.DropColumn {
		return nil, nil
	}

	if ct, ok := columnTypes[f.Kind]; ok {
		return []Column{
			{Name: name, Type: ct, Indexed: f.Indexed},
		}, nil
	}

	if f.Kind != annotation.KindNested {
		return nil, UnsupportedFieldTypeError(name, f.Kind)
	}

	if f.Many {
		return nil, InvalidSchemaFieldError(
			name, "many-valued nested fields are not supported")
	}

	var cols []Column
	for _, sub := range f.Subfields {
		subName := name + "_" + sub.Name
		sf := sub.Field

		if sf.DropColumn {
			continue
		}

		if sf.Kind == annotation.KindNested {
			return nil, InvalidSchemaFieldError(
				subName, "nesting deeper than one level is not supported")
		}

		if sf.PostGISGeometry != "" {
			cols = append(cols, Column{
				Name:        subName,
				Type:        TypeGeometry,
				GeometryTag: sf.PostGISGeometry,
				Indexed:     sf.Indexed,
			})
			continue
		}

		ct, ok := columnTypes[sf.Kind]
		if !ok {
			return nil, UnsupportedFieldTypeError(subName, sf.Kind)
		}

		col := Column{Name: subName, Type: ct, Indexed: sf.Indexed}
		if sub.Name == "root_id" {
			root := FormatTableName(dataset, RootTableName, version)
			col.ForeignKey = root + ".id"
		}
		cols = append(cols, col)
	}
	return cols, nil
}
