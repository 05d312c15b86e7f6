package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDir(t *testing.T) *Dir {
	t.Helper()

	d, err := NewDir(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)

	clock := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	d.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return d
}

func TestSave_WritesIndentedJSON(t *testing.T) {
	d := setupTestDir(t)

	path, err := d.Save("home", map[string]int{"sections": 15})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"kind\": \"home\"")

	var s Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, "home", s.Kind)
	assert.Equal(t, filepath.Base(path), s.ID.String()+".json")
	assert.JSONEq(t, `{"sections": 15}`, string(s.Data))
}

func TestList_OldestFirst(t *testing.T) {
	d := setupTestDir(t)

	_, err := d.Save("detail", "first")
	require.NoError(t, err)
	_, err = d.Save("detail", "second")
	require.NoError(t, err)
	_, err = d.Save("home", "other kind")
	require.NoError(t, err)

	result, err := d.List("detail")
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Empty(t, result.Errors)
	assert.JSONEq(t, `"first"`, string(result.Items[0].Data))
	assert.JSONEq(t, `"second"`, string(result.Items[1].Data))
}

func TestList_CollectsUnreadableFiles(t *testing.T) {
	d := setupTestDir(t)

	_, err := d.Save("list", []int{1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(d.root, "list", "broken.json"), []byte("{"), 0o600))

	result, err := d.List("list")
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "broken.json", result.Errors[0].Filename)
}

func TestList_UnknownKindIsEmpty(t *testing.T) {
	d := setupTestDir(t)

	result, err := d.List("never-saved")
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestGet(t *testing.T) {
	d := setupTestDir(t)

	path, err := d.Save("episode", "ep")
	require.NoError(t, err)
	id := uuid.MustParse(filepath.Base(path)[:36])

	s, err := d.Get("episode", id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, id, s.ID)

	missing, err := d.Get("episode", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvalidKind(t *testing.T) {
	d := setupTestDir(t)

	for _, kind := range []string{"", "..", "a/b", `a\b`} {
		_, err := d.Save(kind, 1)
		assert.ErrorIs(t, err, ErrInvalidKind, kind)
	}
}
