// Package annotation defines the EM annotation schema model: field
// descriptors, schemas, and the registry of known schema names.
//
// Schemas are declarative, immutable descriptions of one annotation
// type over a dataset. The model compiler (pkg/model) translates them
// into concrete PostgreSQL table definitions; this package never deals
// with storage itself.
package annotation

// FieldKind identifies the shape of a schema field.
type FieldKind int

const (
	// KindUnknown is the zero value and never valid in a schema.
	KindUnknown FieldKind = iota

	// KindNumeric is an exact-precision number, used for externally
	// assigned identifiers such as root ids.
	KindNumeric

	// KindInteger is a plain integer field.
	KindInteger

	// KindFloat is a floating-point field.
	KindFloat

	// KindString is a text field.
	KindString

	// KindBoolean is a true/false field.
	KindBoolean

	// KindNested is a record with one level of subfields, for example
	// a spatial point with position and root_id.
	KindNested

	// KindReference marks a field that exists only to point at another
	// annotation table. Reference semantics are carried by the
	// ReferenceType metadata of a schema's target_id field; a bare
	// reference-kind field has no column mapping.
	KindReference
)

// String returns the schema-facing name of a field kind.
func (k FieldKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNested:
		return "nested"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Field describes one schema field: its kind and the metadata the
// model compiler acts on.
type Field struct {
	// Kind is the shape of the field.
	Kind FieldKind

	// Indexed requests a secondary index on the emitted column.
	Indexed bool

	// DropColumn excludes the field from storage entirely.
	DropColumn bool

	// PostGISGeometry holds a PostGIS geometry tag such as "POINTZ".
	// When set on a subfield, the emitted column uses the geometry
	// type instead of the scalar mapping of Kind.
	PostGISGeometry string

	// ReferenceType names the entity type a reference schema's
	// target_id field points at.
	ReferenceType string

	// Many marks a nested field that would expand to multiple rows.
	// The model compiler rejects such fields: one annotation maps to
	// exactly one row.
	Many bool

	// Subfields holds the declared subfields of a nested field, in
	// declaration order. Only one nesting level is supported.
	Subfields []NamedField
}

// NamedField pairs a field name with its descriptor, preserving the
// declaration order of a schema.
type NamedField struct {
	Name  string
	Field Field
}

// Schema is a named, ordered set of field descriptors describing one
// annotation type.
type Schema struct {
	// Name is the registered schema name, e.g. "synapse".
	Name string

	// Reference is true for schemas whose rows annotate rows of
	// another entity type via a target_id field.
	Reference bool

	// Fields are the declared fields in order.
	Fields []NamedField
}

// TargetField returns the target_id descriptor of a reference schema.
// The second return value is false when the schema declares no
// target_id field.
func (s Schema) TargetField() (Field, bool) {
	for _, nf := range s.Fields {
		if nf.Name == "target_id" {
			return nf.Field, true
		}
	}
	return Field{}, false
}
