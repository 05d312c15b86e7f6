// Package snapshot saves scrape results as JSON files so runs can be
// inspected and diffed later. Each snapshot lives at <dir>/<kind>/<id>.json.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidKind is returned for kinds that cannot name a directory.
var ErrInvalidKind = errors.New("invalid snapshot kind")

// Snapshot is one saved result.
type Snapshot struct {
	ID      uuid.UUID       `json:"id"`
	Kind    string          `json:"kind"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// ReadError describes a failure to read a single snapshot file.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

// ListResult contains the snapshots of one kind plus any per-file errors.
type ListResult struct {
	Items  []Snapshot
	Errors []ReadError
}

// Dir is a directory of snapshots.
type Dir struct {
	root string
	now  func() time.Time
}

// NewDir creates the snapshot directory if needed.
func NewDir(root string) (*Dir, error) {
	// 0700: owner-only access
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &Dir{root: root, now: time.Now}, nil
}

// Save writes v as a new snapshot of kind and returns the file path.
func (d *Dir) Save(kind string, v any) (string, error) {
	dir, err := d.kindDir(kind)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot data: %w", err)
	}

	s := Snapshot{
		ID:      uuid.New(),
		Kind:    kind,
		SavedAt: d.now().UTC(),
		Data:    data,
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(dir, s.ID.String()+".json")
	// 0600: owner-only read/write
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}

// List returns the snapshots of kind, oldest first. Unreadable files are
// reported in the result's Errors rather than failing the whole listing; a
// kind with no snapshots yet is an empty result.
func (d *Dir) List(kind string) (*ListResult, error) {
	dir, err := d.kindDir(kind)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Items: []Snapshot{}}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		s, err := readSnapshot(filepath.Join(dir, entry.Name()))
		if err != nil {
			result.Errors = append(result.Errors, ReadError{Filename: entry.Name(), Err: err})
			continue
		}
		result.Items = append(result.Items, *s)
	}

	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].SavedAt.Before(result.Items[j].SavedAt)
	})

	return result, nil
}

// Get reads one snapshot. A missing snapshot returns nil without error.
func (d *Dir) Get(kind string, id uuid.UUID) (*Snapshot, error) {
	dir, err := d.kindDir(kind)
	if err != nil {
		return nil, err
	}

	s, err := readSnapshot(filepath.Join(dir, id.String()+".json"))
	if os.IsNotExist(errors.Unwrap(err)) {
		return nil, nil
	}
	return s, err
}

func (d *Dir) kindDir(kind string) (string, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" || kind == "." || kind == ".." || strings.ContainsAny(kind, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return filepath.Join(d.root, kind), nil
}

func readSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &s, nil
}
