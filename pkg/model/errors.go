package model

import (
	"fmt"
	"strings"

	"github.com/emannotation/emdb/pkg/annotation"
	"github.com/emannotation/emdb/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownSchemaError creates an error for requested schema names that
// are not registered. It carries every offending name, not just the
// first.
func UnknownSchemaError(names []string) error {
	msg := `Schema names <em>%s</em> are not registered

<em>How to fix:</em>
  1. Check the spelling of the schema names
  2. List registered names with Registry.ValidNames()
  3. Register custom schemas before assembling a dataset`

	return &gn.Error{
		Code: errcode.ModelUnknownSchemaError,
		Msg:  msg,
		Vars: []any{strings.Join(names, ", ")},
		Err: fmt.Errorf("unknown annotation schemas: %s",
			strings.Join(names, ", ")),
	}
}

// UnsupportedFieldTypeError creates an error for a field whose kind
// has no column mapping and is not a recognized composite.
func UnsupportedFieldTypeError(
	field string,
	kind annotation.FieldKind,
) error {
	msg := `Field <em>%s</em> has unsupported type <em>%s</em>

Only scalar fields (numeric, integer, float, string, boolean) and
single-level nested records can be stored as columns.`

	return &gn.Error{
		Code: errcode.ModelUnsupportedFieldError,
		Msg:  msg,
		Vars: []any{field, kind.String()},
		Err: fmt.Errorf("field %q: unsupported field type %q",
			field, kind),
	}
}

// InvalidSchemaFieldError creates an error for a structurally
// unsupported field shape, such as nesting deeper than one level or a
// many-valued nested field.
func InvalidSchemaFieldError(field, reason string) error {
	msg := `Field <em>%s</em> cannot be translated to columns: %s

One schema field must map to a fixed-width set of columns so that one
annotation stays one row.`

	return &gn.Error{
		Code: errcode.ModelInvalidFieldError,
		Msg:  msg,
		Vars: []any{field, reason},
		Err:  fmt.Errorf("field %q: %s", field, reason),
	}
}

// MalformedNameError creates an error for a canonical table name
// without a decodable version suffix.
func MalformedNameError(name string, err error) error {
	msg := `Table name <em>%s</em> has no version suffix

Canonical table names end in "_v<version>", for example
"pinky_synapse_table_v1".`

	if err == nil {
		err = fmt.Errorf("no version suffix")
	}
	return &gn.Error{
		Code: errcode.ModelMalformedNameError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("malformed table name %q: %w", name, err),
	}
}
