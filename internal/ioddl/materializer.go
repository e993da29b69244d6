// Package ioddl materializes compiled annotation models as PostgreSQL
// tables. This is an impure I/O package that executes the DDL the pure
// model compiler produced.
package ioddl

import (
	"context"
	"log/slog"
	"sort"

	"github.com/emannotation/emdb/pkg/db"
	"github.com/emannotation/emdb/pkg/emdb"
	"github.com/emannotation/emdb/pkg/model"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// materializer implements the emdb.Materializer interface over a
// database operator.
type materializer struct {
	operator db.Operator
}

// NewMaterializer creates a new Materializer.
func NewMaterializer(op db.Operator) emdb.Materializer {
	return &materializer{operator: op}
}

// CreateTables executes the DDL for every model of a dataset
// assembly. The root entity table goes first so that root_id foreign
// keys of the annotation tables resolve; remaining tables follow in
// name order for reproducible runs.
func (m *materializer) CreateTables(
	ctx context.Context,
	models map[string]*model.Table,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	// Geometry columns need PostGIS.
	if err := m.ensurePostGIS(ctx); err != nil {
		return err
	}

	ordered := orderTables(models)
	slog.Info("Creating tables", "count", len(ordered))

	bar := newProgressBar(len(ordered), "create tables")
	defer bar.Finish()

	session := gormDB.WithContext(ctx)
	for _, tbl := range ordered {
		slog.Debug("Creating table", "table", tbl.Name)
		if err := session.Exec(tbl.TableDDL()).Error; err != nil {
			return CreateTableError(tbl.Name, err)
		}
		for _, idx := range tbl.IndexDDL() {
			if err := session.Exec(idx).Error; err != nil {
				return CreateIndexError(tbl.Name, err)
			}
		}
		bar.Increment()
	}

	slog.Info("Tables created", "count", len(ordered))
	return nil
}

// NextVersion inspects existing tables and returns the next free
// version number for a dataset.
func (m *materializer) NextVersion(
	ctx context.Context,
	dataset string,
) (int, error) {
	names, err := m.operator.TableNames(ctx)
	if err != nil {
		return 0, err
	}
	v, err := model.NextVersion(names, dataset)
	if err != nil {
		return 0, NextVersionError(dataset, err)
	}
	return v, nil
}

func (m *materializer) ensurePostGIS(ctx context.Context) error {
	pool := m.operator.Pool()
	q := "CREATE EXTENSION IF NOT EXISTS postgis"
	if _, err := pool.Exec(ctx, q); err != nil {
		return ExtensionError("postgis", err)
	}
	return nil
}

// orderTables returns models in creation order: non-concrete root
// tables first, then everything else sorted by canonical name.
func orderTables(models map[string]*model.Table) []*model.Table {
	res := make([]*model.Table, 0, len(models))
	for _, t := range models {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Concrete != res[j].Concrete {
			return !res[i].Concrete
		}
		return res[i].Name < res[j].Name
	})
	return res
}
