// Package production provides production integrations: persistence, dispatch publishing,
// visualization and metrics. The containers themselves stay stdlib-only.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/comalice/containerx"
	"gopkg.in/yaml.v3"
)

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister[T any] struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister[T any](dir string) (*JSONPersister[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister[T]{dir: dir}, nil
}

// Save writes snapshot to <id>.json. Infinite priorities are written as the
// strings "+Inf" and "-Inf".
func (p *JSONPersister[T]) Save(ctx context.Context, snapshot Snapshot[T]) error {
	fn, err := snapshotPath(p.dir, snapshot.ContainerID, ".json")
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(toJSONSnapshot(snapshot), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *JSONPersister[T]) Load(ctx context.Context, containerID string) (Snapshot[T], error) {
	fn, err := snapshotPath(p.dir, containerID, ".json")
	if err != nil {
		return Snapshot[T]{}, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot[T]{}, fmt.Errorf("container %q: %w", containerID, os.ErrNotExist)
		}
		return Snapshot[T]{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var wire jsonSnapshot[T]
	if err := json.Unmarshal(data, &wire); err != nil {
		return Snapshot[T]{}, fmt.Errorf("json unmarshal: %w", err)
	}
	snapshot := wire.snapshot()
	snapshot.ContainerID = containerID // Ensure ID

	return snapshot, nil
}

// jsonSnapshot is the JSON file layout of a Snapshot.
type jsonSnapshot[T any] struct {
	ContainerID string         `json:"container_id"`
	Kind        Kind           `json:"kind"`
	Entries     []jsonEntry[T] `json:"entries"`
	Timestamp   time.Time      `json:"timestamp"`
}

type jsonEntry[T any] struct {
	Value    T            `json:"value"`
	Priority jsonPriority `json:"priority"`
}

// jsonPriority is a float64 that survives JSON when infinite.
type jsonPriority float64

func (p jsonPriority) MarshalJSON() ([]byte, error) {
	switch f := float64(p); {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	default:
		return json.Marshal(f)
	}
}

func (p *jsonPriority) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"+Inf"`:
		*p = jsonPriority(math.Inf(1))
		return nil
	case `"-Inf"`:
		*p = jsonPriority(math.Inf(-1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = jsonPriority(f)
	return nil
}

func toJSONSnapshot[T any](s Snapshot[T]) jsonSnapshot[T] {
	entries := make([]jsonEntry[T], len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = jsonEntry[T]{Value: e.Value, Priority: jsonPriority(e.Priority)}
	}
	return jsonSnapshot[T]{
		ContainerID: s.ContainerID,
		Kind:        s.Kind,
		Entries:     entries,
		Timestamp:   s.Timestamp,
	}
}

func (w jsonSnapshot[T]) snapshot() Snapshot[T] {
	entries := make([]containerx.Entry[T, float64], len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = containerx.Entry[T, float64]{Value: e.Value, Priority: float64(e.Priority)}
	}
	return Snapshot[T]{
		ContainerID: w.ContainerID,
		Kind:        w.Kind,
		Entries:     entries,
		Timestamp:   w.Timestamp,
	}
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister[T any] struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister[T any](dir string) (*YAMLPersister[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister[T]{dir: dir}, nil
}

func (p *YAMLPersister[T]) Save(ctx context.Context, snapshot Snapshot[T]) error {
	fn, err := snapshotPath(p.dir, snapshot.ContainerID, ".yaml")
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *YAMLPersister[T]) Load(ctx context.Context, containerID string) (Snapshot[T], error) {
	fn, err := snapshotPath(p.dir, containerID, ".yaml")
	if err != nil {
		return Snapshot[T]{}, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot[T]{}, fmt.Errorf("container %q: %w", containerID, os.ErrNotExist)
		}
		return Snapshot[T]{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot Snapshot[T]
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot[T]{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	snapshot.ContainerID = containerID // Ensure ID

	return snapshot, nil
}

// snapshotPath rejects ids that would escape dir.
func snapshotPath(dir, id, ext string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(dir, id+ext), nil
}
