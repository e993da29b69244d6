package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Model compilation errors
	ModelUnknownSchemaError
	ModelUnsupportedFieldError
	ModelInvalidFieldError
	ModelMalformedNameError

	// Schema registry errors
	RegistryNotFoundError
	RegistryDuplicateError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// DDL materialization errors
	DDLGORMConnectionError
	DDLExtensionError
	DDLCreateTableError
	DDLCreateIndexError
	DDLNextVersionError
)
