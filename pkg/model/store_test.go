package model_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/emannotation/emdb/pkg/annotation"
	"github.com/emannotation/emdb/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetOrCompileMemoizes(t *testing.T) {
	store := model.NewStore()
	var compilations int

	compile := func() (*model.Table, error) {
		compilations++
		return model.Compile(
			"pinky", "synapse_table", annotation.SynapseSchema(), 1)
	}

	first, err := store.GetOrCompile("pinky", "synapse_table", 1, compile)
	require.NoError(t, err)
	second, err := store.GetOrCompile("pinky", "synapse_table", 1, compile)
	require.NoError(t, err)

	assert.Equal(t, 1, compilations,
		"second lookup must not compile again")
	assert.Same(t, first, second,
		"repeated lookups return the identical instance")
}

func TestStoreDistinctKeys(t *testing.T) {
	store := model.NewStore()

	compileFor := func(ds string, v int) func() (*model.Table, error) {
		return func() (*model.Table, error) {
			return model.CompileRoot(ds, v), nil
		}
	}

	a, err := store.GetOrCompile(
		"pinky", model.RootTableName, 1, compileFor("pinky", 1))
	require.NoError(t, err)
	b, err := store.GetOrCompile(
		"pinky", model.RootTableName, 2, compileFor("pinky", 2))
	require.NoError(t, err)
	c, err := store.GetOrCompile(
		"basil", model.RootTableName, 1, compileFor("basil", 1))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 3, store.Len())
}

func TestStoreFailedCompilationNotCached(t *testing.T) {
	store := model.NewStore()
	boom := errors.New("boom")

	_, err := store.GetOrCompile("pinky", "bad_table", 1,
		func() (*model.Table, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	assert.False(t, store.Contains("pinky", "bad_table", 1),
		"failed compilation must leave nothing in the cache")

	// The key stays usable after a failure.
	tbl, err := store.GetOrCompile("pinky", "bad_table", 1,
		func() (*model.Table, error) {
			return model.CompileRoot("pinky", 1), nil
		})
	require.NoError(t, err)
	assert.NotNil(t, tbl)
}

// TestStoreConcurrentFirstCompile verifies that concurrent first-time
// requests for the same key converge on a single stored instance with
// exactly one compilation.
func TestStoreConcurrentFirstCompile(t *testing.T) {
	store := model.NewStore()
	var compilations atomic.Int32

	const callers = 32
	results := make([]*model.Table, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := range callers {
		go func() {
			defer wg.Done()
			tbl, err := store.GetOrCompile("pinky", "synapse_table", 1,
				func() (*model.Table, error) {
					compilations.Add(1)
					return model.Compile("pinky", "synapse_table",
						annotation.SynapseSchema(), 1)
				})
			require.NoError(t, err)
			results[i] = tbl
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), compilations.Load())
	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}
