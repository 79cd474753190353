package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localstore/docdb/pkg/kv"
	"github.com/localstore/docdb/pkg/storage"
)

func TestSnapshotRoundTrip(t *testing.T) {
	src := kv.NewMemoryStore()
	require.NoError(t, src.Set("notes", []byte(`[{"_id":"1","text":"hi"}]`)))
	require.NoError(t, src.Set("tasks", []byte(`[{"_id":"2","done":false}]`)))

	filename := filepath.Join(t.TempDir(), "data"+storage.FileExtension)
	require.NoError(t, storage.Save(src, filename))

	dst := kv.NewMemoryStore()
	require.NoError(t, storage.Load(dst, filename))

	notes, err := dst.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"_id":"1","text":"hi"}]`), notes)

	tasks, err := dst.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"_id":"2","done":false}]`), tasks)

	keys, err := dst.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "tasks"}, keys)
}

func TestSnapshotRoundTrip_EmptyStore(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty"+storage.FileExtension)
	require.NoError(t, storage.Save(kv.NewMemoryStore(), filename))

	dst := kv.NewMemoryStore()
	require.NoError(t, storage.Load(dst, filename))

	keys, err := dst.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	dst := kv.NewMemoryStore()
	err := storage.Load(dst, filepath.Join(t.TempDir(), "nope"+storage.FileExtension))
	require.NoError(t, err)
}

func TestLoad_RejectsForeignFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "garbage"+storage.FileExtension)
	require.NoError(t, os.WriteFile(filename, []byte("GARBAGE FILE CONTENTS"), 0o644))

	err := storage.Load(kv.NewMemoryStore(), filename)
	assert.Error(t, err)
}

func TestLoad_KeepsExistingKeysNotInSnapshot(t *testing.T) {
	src := kv.NewMemoryStore()
	require.NoError(t, src.Set("notes", []byte(`[]`)))

	filename := filepath.Join(t.TempDir(), "data"+storage.FileExtension)
	require.NoError(t, storage.Save(src, filename))

	dst := kv.NewMemoryStore()
	require.NoError(t, dst.Set("tasks", []byte(`[{"_id":"9"}]`)))
	require.NoError(t, storage.Load(dst, filename))

	keys, err := dst.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "tasks"}, keys)
}
