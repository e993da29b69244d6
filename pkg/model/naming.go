package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RootTableName is the logical name of the per-dataset root entity
// table. Every reference-bearing annotation table points at it through
// its root_id columns.
const RootTableName = "cellsegment"

// FormatTableName derives the canonical table name for a
// (dataset, table, version) triple. Dataset and table names must not
// themselves end in an "_v<digits>" pattern; that is a caller
// contract, not validated here.
func FormatTableName(dataset, table string, version int) string {
	return fmt.Sprintf("%s_%s_v%d", dataset, table, version)
}

// TableVersion extracts the version number from a canonical table
// name. It is the exact inverse of FormatTableName for every version
// >= 0.
func TableVersion(name string) (int, error) {
	i := strings.LastIndex(name, "_")
	if i < 0 || i == len(name)-1 {
		return 0, MalformedNameError(name, nil)
	}
	seg := name[i+1:]
	if !strings.HasPrefix(seg, "v") {
		return 0, MalformedNameError(name, nil)
	}
	v, err := strconv.Atoi(seg[1:])
	if err != nil || v < 0 {
		return 0, MalformedNameError(name, err)
	}
	return v, nil
}

// NextVersion scans existing table names for those belonging to a
// dataset and returns the next free version number, or 0 when the
// dataset has no tables yet. The enumeration of existing names is
// supplied by the caller; this function performs no I/O.
func NextVersion(existing []string, dataset string) (int, error) {
	next := 0
	for _, name := range existing {
		if !strings.Contains(name, dataset) {
			continue
		}
		v, err := TableVersion(name)
		if err != nil {
			return 0, err
		}
		if v+1 > next {
			next = v + 1
		}
	}
	return next, nil
}
