package kvstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/testutil"
)

// backends returns one fresh store per backend.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	db, err := OpenSQLite(filepath.Join(dir, DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(dir, FileName)),
		"sqlite": db,
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := s.Get("goals")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, value)
		})
	}
}

func TestStore_SetGet(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("goals", `[{"id":"a"}]`))
			require.NoError(t, s.Set("other", "x"))

			value, ok, err := s.Get("goals")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, value)

			// Overwrite
			require.NoError(t, s.Set("goals", "[]"))
			value, _, err = s.Get("goals")
			require.NoError(t, err)
			assert.Equal(t, "[]", value)

			value, _, err = s.Get("other")
			require.NoError(t, err)
			assert.Equal(t, "x", value)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	require.NoError(t, NewFileStore(path).Set("goals", "[]"))

	value, ok, err := NewFileStore(path).Get("goals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, ok, err := NewFileStore(path).Get("goals")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	logger := &testutil.MockLogger{}
	s := NewFileStore(path).WithLogger(logger)

	_, ok, err := s.Get("goals")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, logger.Count("WARN"))

	require.NoError(t, s.Set("goals", "[]"))
	value, ok, err := s.Get("goals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)

	backup, err := os.ReadFile(path + corruptSuffix)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))
}

func TestFileStore_ConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			// Separate instances, like separate processes.
			assert.NoError(t, NewFileStore(path).Set(key, key))
		}(key)
	}
	wg.Wait()

	s := NewFileStore(path)
	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		value, ok, err := s.Get(key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, key, value)
	}
}

func TestSQLiteStore_Migrated(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	version, err := schemaVersion(s.db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, s.Set("goals", "[]"))
	var row kvRow
	require.NoError(t, s.db.Get(&row, `SELECT key, value, updated_at FROM kv WHERE key = ?`, "goals"))
	assert.NotEmpty(t, row.UpdatedAt)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("goals", `[1]`))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	value, ok, err := s.Get("goals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("", dir, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), s.Path())

	s, err = Open(domain.StoreSQLite, dir, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	assert.Equal(t, filepath.Join(dir, DBFileName), s.Path())

	_, err = Open("redis", dir, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownStoreKind)
}
