package ioddl

import (
	"fmt"

	"github.com/emannotation/emdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for materialization attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Table creation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot open a GORM session over the connection pool

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue

<em>How to fix:</em>
  1. Ensure the database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.DDLGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// ExtensionError creates an error for a failed CREATE EXTENSION.
func ExtensionError(extension string, err error) error {
	msg := `Cannot create PostgreSQL extension <em>%s</em>

<em>Possible causes:</em>
  - Extension is not installed on the server
  - Database user lacks CREATE privileges

<em>How to fix:</em>
  1. Install the extension packages on the server
  2. Run CREATE EXTENSION as a superuser once`

	return &gn.Error{
		Code: errcode.DDLExtensionError,
		Msg:  msg,
		Vars: []any{extension},
		Err: fmt.Errorf("failed to create extension %s: %w",
			extension, err),
	}
}

// CreateTableError creates an error for a failed CREATE TABLE.
func CreateTableError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>Possible causes:</em>
  - Table already exists for this version
  - Referenced root entity table is missing
  - Database user lacks CREATE permissions

<em>How to fix:</em>
  1. Bump the version instead of recreating a table
  2. Assemble the whole dataset so the root table exists
  3. Check database user permissions`

	return &gn.Error{
		Code: errcode.DDLCreateTableError,
		Msg:  msg,
		Vars: []any{table},
		Err: fmt.Errorf("failed to create table %s: %w",
			table, err),
	}
}

// CreateIndexError creates an error for a failed CREATE INDEX.
func CreateIndexError(table string, err error) error {
	msg := `Cannot create index on table <em>%s</em>`

	return &gn.Error{
		Code: errcode.DDLCreateIndexError,
		Msg:  msg,
		Vars: []any{table},
		Err: fmt.Errorf("failed to create index on %s: %w",
			table, err),
	}
}

// NextVersionError creates an error for failed version discovery.
func NextVersionError(dataset string, err error) error {
	msg := `Cannot derive the next version for dataset <em>%s</em>

An existing table matching the dataset has no decodable version
suffix. Rename or drop the offending table.`

	return &gn.Error{
		Code: errcode.DDLNextVersionError,
		Msg:  msg,
		Vars: []any{dataset},
		Err: fmt.Errorf(
			"failed to derive next version for %s: %w", dataset, err),
	}
}
