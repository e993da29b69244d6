package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/emannotation/emdb/internal/iodb"
	"github.com/emannotation/emdb/internal/ioddl"
	"github.com/emannotation/emdb/pkg/annotation"
	"github.com/emannotation/emdb/pkg/db"
	"github.com/emannotation/emdb/pkg/emdb"
	"github.com/emannotation/emdb/pkg/model"
	"github.com/spf13/cobra"
)

var (
	createDatasets []string
	createTables   []string
	createVersion  int
	createContacts bool
	createForce    bool
)

func getCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Compile annotation schemas and create their tables",
		Long: `Compile annotation schemas for one or more datasets and create the
resulting versioned tables in PostgreSQL.

This command:
  1. Compiles each requested schema into a table definition
  2. Connects to PostgreSQL using configuration settings
  3. Ensures the PostGIS extension is available
  4. Creates the root entity table, annotation tables, and indexes

Every --table flag binds one schema to one table name, as
schema=table. The root entity table is always included per dataset.
When --version is omitted the next free version is discovered from
existing tables; with several datasets --version is required. With
several datasets the bindings apply to each, and datasets are
compiled concurrently (capped by jobs_number).

Use --force to drop ALL existing tables first and start from an
empty database (destructive).

Examples:
  emdb create --dataset pinky --table synapse=synapses
  emdb create --dataset pinky --dataset basil \
    --table synapse=synapses \
    --table cell_type_local=soma_types \
    --version 2 --contacts`,
		RunE: runCreate,
	}

	cmd.Flags().StringArrayVar(&createDatasets, "dataset", nil,
		"dataset the tables belong to, repeatable (required)")
	cmd.Flags().StringArrayVar(&createTables, "table", nil,
		"schema=table binding, repeatable (required)")
	cmd.Flags().IntVar(&createVersion, "version", -1,
		"schema version to create (default: next free version)")
	cmd.Flags().BoolVar(&createContacts, "contacts", false,
		"also create a contact table per dataset")
	cmd.Flags().BoolVar(&createForce, "force", false,
		"drop all existing tables before creating (destructive)")

	cmd.MarkFlagRequired("dataset")
	cmd.MarkFlagRequired("table")

	return cmd
}

// parsePairs converts repeated schema=table flags into bindings.
func parsePairs(args []string) ([]model.SchemaTable, error) {
	pairs := make([]model.SchemaTable, 0, len(args))
	for _, arg := range args {
		schema, table, ok := strings.Cut(arg, "=")
		schema = strings.TrimSpace(schema)
		table = strings.TrimSpace(table)
		if !ok || schema == "" || table == "" {
			return nil, fmt.Errorf(
				"invalid --table value %q, expected schema=table", arg)
		}
		pairs = append(pairs, model.SchemaTable{
			SchemaName: schema,
			TableName:  table,
		})
	}
	return pairs, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	pairs, err := parsePairs(createTables)
	if err != nil {
		return err
	}
	if createVersion < 0 && len(createDatasets) > 1 {
		return fmt.Errorf(
			"--version is required when creating several datasets")
	}

	// Create database operator
	var op db.Operator = iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer op.Close()

	fmt.Printf("Connected to database: %s@%s:%d/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port,
		cfg.Database.Database)

	if createForce {
		hasTables, err := op.HasTables(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for existing tables: %w", err)
		}
		if hasTables {
			fmt.Println("Dropping all existing tables (--force enabled)...")
			if err := op.DropAllTables(ctx); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
			fmt.Println("✓ All tables dropped")
		}
	}

	var mat emdb.Materializer = ioddl.NewMaterializer(op)

	version := createVersion
	if version < 0 {
		version, err = mat.NextVersion(ctx, createDatasets[0])
		if err != nil {
			return fmt.Errorf("failed to discover next version: %w", err)
		}
		fmt.Printf("Using next free version: v%d\n", version)
	}

	// Compile schemas into table definitions before touching the
	// database, so bad schema names abort with nothing created.
	asm := model.NewAssembler(model.NewStore(), annotation.DefaultRegistry())
	asm.SetJobs(cfg.JobsNumber)
	batch, err := asm.AllModels(
		createDatasets, pairs, version, createContacts)
	if err != nil {
		return fmt.Errorf("failed to compile schemas: %w", err)
	}

	datasets := make([]string, 0, len(batch))
	for ds := range batch {
		datasets = append(datasets, ds)
	}
	sort.Strings(datasets)

	for _, ds := range datasets {
		models := batch[ds]
		fmt.Printf("Creating %d tables for dataset %s (v%d)...\n",
			len(models), ds, version)
		if err := mat.CreateTables(ctx, models); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	fmt.Println("\n✓ Table creation complete!")
	for _, ds := range datasets {
		for _, tbl := range batch[ds] {
			fmt.Printf("  - %s\n", tbl.Name)
		}
	}

	return nil
}
