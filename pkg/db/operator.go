package db

import (
	"context"

	"github.com/emannotation/emdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines basic database management operations. It provides
// connection lifecycle management and exposes the pgxpool.Pool for
// higher-level components (the DDL materializer) to execute their
// specialized SQL internally.
//
// The interface stays minimal on purpose: table creation belongs to
// the materializer, the operator only answers questions about the
// database and hands out connections.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for components that
	// run their own SQL.
	Pool() *pgxpool.Pool

	// TableNames lists all table names in the public schema. Version
	// discovery feeds this into model.NextVersion.
	TableNames(ctx context.Context) ([]string, error)

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema. Used when
	// recreating a dataset from scratch.
	DropAllTables(ctx context.Context) error
}
