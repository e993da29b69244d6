package model

import (
	"sync"

	"github.com/emannotation/emdb/pkg/annotation"
	"golang.org/x/sync/errgroup"
)

// ContactModelKey is the result-map key for the optional contact
// table. The root entity table is stored under RootTableName.
const ContactModelKey = "contact"

// SchemaTable pairs a registered schema name with the table it
// materializes into.
type SchemaTable struct {
	SchemaName string
	TableName  string
}

// Assembler builds the full set of models for datasets. The store and
// registry are injected so tests can run with isolated caches and
// custom schemas.
type Assembler struct {
	store *Store
	reg   annotation.Registry
	jobs  int
}

// NewAssembler creates an assembler over a model store and a schema
// registry.
func NewAssembler(store *Store, reg annotation.Registry) *Assembler {
	return &Assembler{store: store, reg: reg}
}

// SetJobs caps the number of datasets AllModels assembles
// concurrently. Zero or negative means no limit.
func (a *Assembler) SetJobs(n int) {
	a.jobs = n
}

// validateNames checks every requested schema name against the
// registry. All unknown names are reported in a single error, before
// any compilation happens.
func (a *Assembler) validateNames(pairs []SchemaTable) error {
	valid := make(map[string]struct{})
	for _, n := range a.reg.ValidNames() {
		valid[n] = struct{}{}
	}
	var unknown []string
	for _, p := range pairs {
		if _, ok := valid[p.SchemaName]; !ok {
			unknown = append(unknown, p.SchemaName)
		}
	}
	if len(unknown) > 0 {
		return UnknownSchemaError(unknown)
	}
	return nil
}

// DatasetModels compiles (or fetches from cache) every model a dataset
// needs: the root entity table, one table per requested
// (schema, table) pair, and optionally the shared contact table. Keys
// of the returned map are table names, except the root entity table
// under RootTableName and the contact table under ContactModelKey.
//
// Assembly is all-or-nothing: names are validated before any
// compilation, and the first compile error aborts the whole request.
// Models compiled before the failure remain cached; they are complete
// definitions, never partial ones.
func (a *Assembler) DatasetModels(
	dataset string,
	pairs []SchemaTable,
	version int,
	includeContacts bool,
) (map[string]*Table, error) {
	if err := a.validateNames(pairs); err != nil {
		return nil, err
	}

	res := make(map[string]*Table, len(pairs)+2)

	// Root entity table first: root_id foreign keys of every other
	// table in this dataset target it.
	root, err := a.store.GetOrCompile(
		dataset, RootTableName, version,
		func() (*Table, error) {
			return CompileRoot(dataset, version), nil
		})
	if err != nil {
		return nil, err
	}
	res[RootTableName] = root

	for _, p := range pairs {
		sch, err := a.reg.Lookup(p.SchemaName)
		if err != nil {
			return nil, err
		}
		m, err := a.store.GetOrCompile(
			dataset, p.TableName, version,
			func() (*Table, error) {
				return Compile(dataset, p.TableName, sch, version)
			})
		if err != nil {
			return nil, err
		}
		res[p.TableName] = m
	}

	if includeContacts {
		contact := annotation.ContactSchema()
		m, err := a.store.GetOrCompile(
			dataset, ContactModelKey, version,
			func() (*Table, error) {
				return Compile(dataset, ContactModelKey, contact, version)
			})
		if err != nil {
			return nil, err
		}
		res[ContactModelKey] = m
	}

	return res, nil
}

// AllModels assembles models for several datasets at once. Schema
// names are validated once across the whole batch before any dataset
// compiles; datasets are then assembled concurrently, as they are
// fully independent of each other. Any failure aborts the batch.
func (a *Assembler) AllModels(
	datasets []string,
	pairs []SchemaTable,
	version int,
	includeContacts bool,
) (map[string]map[string]*Table, error) {
	if err := a.validateNames(pairs); err != nil {
		return nil, err
	}

	res := make(map[string]map[string]*Table, len(datasets))
	var mu sync.Mutex
	var g errgroup.Group
	if a.jobs > 0 {
		g.SetLimit(a.jobs)
	}
	for _, ds := range datasets {
		g.Go(func() error {
			models, err := a.DatasetModels(
				ds, pairs, version, includeContacts)
			if err != nil {
				return err
			}
			mu.Lock()
			res[ds] = models
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
