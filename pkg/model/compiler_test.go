package model_test

import (
	"testing"

	"github.com/emannotation/emdb/pkg/annotation"
	"github.com/emannotation/emdb/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarSchema() annotation.Schema {
	return annotation.Schema{
		Name: "soma_valence",
		Fields: []annotation.NamedField{
			{
				Name:  "valence",
				Field: annotation.Field{Kind: annotation.KindInteger},
			},
			{
				Name: "cell_type",
				Field: annotation.Field{
					Kind:    annotation.KindString,
					Indexed: true,
				},
			},
			{
				Name: "internal_notes",
				Field: annotation.Field{
					Kind:       annotation.KindString,
					DropColumn: true,
				},
			},
		},
	}
}

func TestCompileScalarSchema(t *testing.T) {
	tbl, err := model.Compile("pinky", "soma_valence", scalarSchema(), 1)
	require.NoError(t, err)

	assert.Equal(t, "pinky_soma_valence_v1", tbl.Name)
	assert.Equal(t, "pinky", tbl.Dataset)
	assert.Equal(t, 1, tbl.Version)
	assert.True(t, tbl.Concrete)

	// Non-dropped fields plus the primary key.
	require.Len(t, tbl.Columns, 3)

	assert.Equal(t, "id", tbl.Columns[0].Name)
	assert.Equal(t, model.TypeNumeric, tbl.Columns[0].Type)
	assert.True(t, tbl.Columns[0].PrimaryKey)

	assert.Equal(t, "valence", tbl.Columns[1].Name)
	assert.Equal(t, "cell_type", tbl.Columns[2].Name)
	assert.True(t, tbl.Columns[2].Indexed)
}

// TestCompileSynapse follows the classic example: dataset "pinky",
// synapse schema, table "synapse_table", version 1.
func TestCompileSynapse(t *testing.T) {
	tbl, err := model.Compile(
		"pinky", "synapse_table", annotation.SynapseSchema(), 1)
	require.NoError(t, err)

	assert.Equal(t, "pinky_synapse_table_v1", tbl.Name)

	prePos, ok := tbl.Column("pre_pt_position")
	require.True(t, ok)
	assert.Equal(t, model.TypeGeometry, prePos.Type)
	assert.Equal(t, "POINTZ", prePos.GeometryTag)
	assert.True(t, prePos.Indexed)

	preRoot, ok := tbl.Column("pre_pt_root_id")
	require.True(t, ok)
	assert.Equal(t, "pinky_cellsegment_v1.id", preRoot.ForeignKey)

	postRoot, ok := tbl.Column("post_pt_root_id")
	require.True(t, ok)
	assert.Equal(t, "pinky_cellsegment_v1.id", postRoot.ForeignKey)

	// ctr_pt is unbound: no root_id column.
	_, ok = tbl.Column("ctr_pt_root_id")
	assert.False(t, ok)

	size, ok := tbl.Column("size")
	require.True(t, ok)
	assert.Equal(t, model.TypeFloat, size.Type)

	// Dropped supervoxel ids never surface.
	_, ok = tbl.Column("pre_pt_supervoxel_id")
	assert.False(t, ok)
}

func TestCompileReferenceSchema(t *testing.T) {
	sch := annotation.PostsynapticCompartmentSchema()
	tbl, err := model.Compile("pinky", "psd_table", sch, 1)
	require.NoError(t, err)

	target, ok := tbl.Column("target_id")
	require.True(t, ok)
	assert.Equal(t, model.TypeInteger, target.Type)
	assert.Equal(t, "pinky_synapse.id", target.ForeignKey)

	// target_id is declared as a plain field too; the foreign-key
	// version wins and no duplicate column survives.
	count := 0
	for _, c := range tbl.Columns {
		if c.Name == "target_id" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCompileReferenceSchemaWithoutTarget(t *testing.T) {
	sch := annotation.Schema{
		Name:      "broken_ref",
		Reference: true,
		Fields: []annotation.NamedField{
			{
				Name:  "compartment",
				Field: annotation.Field{Kind: annotation.KindString},
			},
		},
	}
	_, err := model.Compile("pinky", "broken", sch, 1)
	require.Error(t, err)
}

func TestCompileRoot(t *testing.T) {
	tbl := model.CompileRoot("pinky", 3)

	assert.Equal(t, "pinky_cellsegment_v3", tbl.Name)
	assert.False(t, tbl.Concrete,
		"root entity table is shared, not concrete")
	require.Len(t, tbl.Columns, 1)
	assert.Equal(t, "id", tbl.Columns[0].Name)
	assert.True(t, tbl.Columns[0].PrimaryKey)
}

func TestCompilePropagatesFlattenErrors(t *testing.T) {
	sch := annotation.Schema{
		Name: "bad",
		Fields: []annotation.NamedField{
			{
				Name:  "ok_field",
				Field: annotation.Field{Kind: annotation.KindInteger},
			},
			{
				Name:  "bad_field",
				Field: annotation.Field{Kind: annotation.KindUnknown},
			},
		},
	}
	tbl, err := model.Compile("pinky", "bad", sch, 1)
	require.Error(t, err)
	assert.Nil(t, tbl, "compilation is all-or-nothing per table")
}
