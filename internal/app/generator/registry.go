package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// Registry stores how many generations ran per counter type.
type Registry interface {
	Get(ctx context.Context) (domain.GenerationRegistry, error)
	Counter(ctx context.Context, t domain.CounterType) (int, error)
	Update(ctx context.Context, t domain.CounterType, n int) error
	Reset(ctx context.Context, t domain.CounterType) error
}

// FileRegistry keeps the registry in a JSON file. A missing file reads as
// a fresh registry and is created on the first write.
type FileRegistry struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileRegistry creates a FileRegistry at path.
func NewFileRegistry(path string) *FileRegistry {
	return &FileRegistry{path: path, now: time.Now}
}

// Get returns the whole registry.
func (r *FileRegistry) Get(_ context.Context) (domain.GenerationRegistry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Counter returns the current counter for t.
func (r *FileRegistry) Counter(_ context.Context, t domain.CounterType) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, err := r.load()
	if err != nil {
		return 0, err
	}
	return reg.Counter[t], nil
}

// Update sets the counter for t and stamps the generation time.
func (r *FileRegistry) Update(_ context.Context, t domain.CounterType, n int) error {
	if !t.IsValid() {
		return fmt.Errorf("registry update: counter type %q: %w", t, domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, err := r.load()
	if err != nil {
		return err
	}
	now := r.now().UTC()
	reg.Counter[t] = n
	reg.LastGenerated[t] = &now
	return r.save(reg)
}

// Reset zeroes the counter for t and clears its timestamp.
func (r *FileRegistry) Reset(_ context.Context, t domain.CounterType) error {
	if !t.IsValid() {
		return fmt.Errorf("registry reset: counter type %q: %w", t, domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, err := r.load()
	if err != nil {
		return err
	}
	reg.Counter[t] = 0
	reg.LastGenerated[t] = nil
	return r.save(reg)
}

func (r *FileRegistry) load() (domain.GenerationRegistry, error) {
	reg := domain.NewGenerationRegistry()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return reg, nil
	}
	if err != nil {
		return reg, fmt.Errorf("read registry: %w", err)
	}

	var stored domain.GenerationRegistry
	if err := json.Unmarshal(data, &stored); err != nil {
		return reg, fmt.Errorf("decode registry %s: %w", r.path, err)
	}
	for t, n := range stored.Counter {
		reg.Counter[t] = n
	}
	for t, ts := range stored.LastGenerated {
		reg.LastGenerated[t] = ts
	}
	return reg, nil
}

func (r *FileRegistry) save(reg domain.GenerationRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace registry: %w", err)
	}
	return nil
}
