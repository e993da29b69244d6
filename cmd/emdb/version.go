package main

import (
	"context"
	"fmt"

	"github.com/emannotation/emdb/internal/iodb"
	"github.com/emannotation/emdb/internal/ioddl"
	"github.com/emannotation/emdb/pkg/db"
	"github.com/emannotation/emdb/pkg/emdb"
	"github.com/spf13/cobra"
)

var versionDataset string

func getVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the next free version number for a dataset",
		Long: `Inspect existing tables and report the next free schema version
for a dataset. A dataset with no tables starts at v0.

Examples:
  emdb version --dataset pinky`,
		RunE: runVersion,
	}

	cmd.Flags().StringVar(&versionDataset, "dataset", "",
		"dataset to inspect (required)")
	cmd.MarkFlagRequired("dataset")

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	var op db.Operator = iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer op.Close()

	var mat emdb.Materializer = ioddl.NewMaterializer(op)
	next, err := mat.NextVersion(ctx, versionDataset)
	if err != nil {
		return fmt.Errorf("failed to discover next version: %w", err)
	}

	fmt.Printf("Next free version for dataset %s: v%d\n",
		versionDataset, next)

	return nil
}
