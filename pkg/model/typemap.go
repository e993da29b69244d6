package model

import (
	"github.com/emannotation/emdb/pkg/annotation"
)

// columnTypes is the closed mapping from scalar field kinds to column
// types. The flattener checks for composite kinds (nested records)
// before consulting this table; anything matching neither is rejected.
var columnTypes = map[annotation.FieldKind]ColumnType{
	annotation.KindNumeric: TypeNumeric,
	annotation.KindInteger: TypeInteger,
	annotation.KindFloat:   TypeFloat,
	annotation.KindString:  TypeString,
	annotation.KindBoolean: TypeBoolean,
}
