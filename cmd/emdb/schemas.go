package main

import (
	"fmt"
	"sort"

	"github.com/emannotation/emdb/pkg/annotation"
	"github.com/spf13/cobra"
)

func getSchemasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the annotation schemas known to this build",
		RunE:  runSchemas,
	}

	return cmd
}

func runSchemas(cmd *cobra.Command, args []string) error {
	reg := annotation.DefaultRegistry()
	names := reg.ValidNames()
	sort.Strings(names)

	fmt.Printf("Known annotation schemas (%d):\n", len(names))
	for _, name := range names {
		sch, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		kind := "annotation"
		if sch.Reference {
			kind = "reference"
		}
		fmt.Printf("  - %s (%s, %d fields)\n", name, kind, len(sch.Fields))
	}

	return nil
}
