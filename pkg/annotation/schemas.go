package annotation

// SpatialPoint describes an unbound 3-D location. The position
// subfield materializes as a PostGIS POINTZ geometry column.
func SpatialPoint() Field {
	return Field{
		Kind: KindNested,
		Subfields: []NamedField{
			{
				Name: "position",
				Field: Field{
					Kind:            KindNumeric,
					PostGISGeometry: "POINTZ",
					Indexed:         true,
				},
			},
		},
	}
}

// BoundSpatialPoint is a spatial point bound to a root entity. Its
// root_id subfield becomes a foreign key into the dataset's root
// entity table; supervoxel_id is kept in the schema for ingest-time
// validation but never stored.
func BoundSpatialPoint() Field {
	return Field{
		Kind: KindNested,
		Subfields: []NamedField{
			{
				Name: "position",
				Field: Field{
					Kind:            KindNumeric,
					PostGISGeometry: "POINTZ",
					Indexed:         true,
				},
			},
			{
				Name:  "root_id",
				Field: Field{Kind: KindNumeric, Indexed: true},
			},
			{
				Name:  "supervoxel_id",
				Field: Field{Kind: KindNumeric, DropColumn: true},
			},
		},
	}
}

// SynapseSchema describes a chemical synapse: pre- and postsynaptic
// bound points, an unbound center point and a size measure.
func SynapseSchema() Schema {
	return Schema{
		Name: "synapse",
		Fields: []NamedField{
			{Name: "pre_pt", Field: BoundSpatialPoint()},
			{Name: "ctr_pt", Field: SpatialPoint()},
			{Name: "post_pt", Field: BoundSpatialPoint()},
			{Name: "size", Field: Field{Kind: KindFloat}},
		},
	}
}

// ContactSchema describes an adjacency between two root entities.
// The dataset assembler compiles it on demand; it is also registered
// so callers can request contact tables explicitly.
func ContactSchema() Schema {
	return Schema{
		Name: "contact",
		Fields: []NamedField{
			{Name: "sidea_pt", Field: BoundSpatialPoint()},
			{Name: "sideb_pt", Field: BoundSpatialPoint()},
			{Name: "ctr_pt", Field: SpatialPoint()},
			{Name: "size", Field: Field{Kind: KindInteger}},
		},
	}
}

// CellTypeLocalSchema labels a single cell with a type within a
// classification system.
func CellTypeLocalSchema() Schema {
	return Schema{
		Name: "cell_type_local",
		Fields: []NamedField{
			{Name: "pt", Field: BoundSpatialPoint()},
			{
				Name:  "cell_type",
				Field: Field{Kind: KindString, Indexed: true},
			},
			{
				Name:  "classification_system",
				Field: Field{Kind: KindString},
			},
		},
	}
}

// BoutonShapeSchema is a reference schema classifying the bouton
// shape of an existing synapse annotation.
func BoutonShapeSchema() Schema {
	return Schema{
		Name:      "bouton_shape",
		Reference: true,
		Fields: []NamedField{
			{
				Name: "target_id",
				Field: Field{
					Kind:          KindInteger,
					ReferenceType: "synapse",
				},
			},
			{
				Name:  "shape",
				Field: Field{Kind: KindString, Indexed: true},
			},
		},
	}
}

// PostsynapticCompartmentSchema is a reference schema: each row
// classifies the postsynaptic compartment of an existing synapse
// annotation.
func PostsynapticCompartmentSchema() Schema {
	return Schema{
		Name:      "postsynaptic_compartment",
		Reference: true,
		Fields: []NamedField{
			{
				Name: "target_id",
				Field: Field{
					Kind:          KindInteger,
					ReferenceType: "synapse",
				},
			},
			{
				Name:  "compartment",
				Field: Field{Kind: KindString, Indexed: true},
			},
		},
	}
}
