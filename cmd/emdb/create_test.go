package main

import (
	"testing"

	"github.com/emannotation/emdb/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []model.SchemaTable
	}{
		{
			name: "single pair",
			args: []string{"synapse=synapses"},
			want: []model.SchemaTable{
				{SchemaName: "synapse", TableName: "synapses"},
			},
		},
		{
			name: "multiple pairs",
			args: []string{
				"synapse=synapses",
				"cell_type_local=soma_types",
			},
			want: []model.SchemaTable{
				{SchemaName: "synapse", TableName: "synapses"},
				{SchemaName: "cell_type_local", TableName: "soma_types"},
			},
		},
		{
			name: "whitespace trimmed",
			args: []string{" synapse = synapses "},
			want: []model.SchemaTable{
				{SchemaName: "synapse", TableName: "synapses"},
			},
		},
		{
			name: "empty input",
			args: nil,
			want: []model.SchemaTable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePairs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePairs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"missing separator", "synapse"},
		{"empty schema", "=synapses"},
		{"empty table", "synapse="},
		{"only separator", "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePairs([]string{tt.arg})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expected schema=table")
		})
	}
}
