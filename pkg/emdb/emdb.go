// Package emdb defines the public interfaces of the emdb annotation
// table lifecycle.
package emdb

import (
	"context"

	"github.com/emannotation/emdb/pkg/model"
)

// Materializer turns compiled annotation models into PostgreSQL
// tables. Implementations are impure; the pure compilation work lives
// in pkg/model.
type Materializer interface {
	// CreateTables executes the DDL for all compiled models of a
	// dataset assembly, root entity table first. It also creates the
	// PostGIS extension when missing.
	CreateTables(ctx context.Context, models map[string]*model.Table) error

	// NextVersion inspects existing tables and returns the next free
	// version number for a dataset.
	NextVersion(ctx context.Context, dataset string) (int, error)
}
