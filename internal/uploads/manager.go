package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"go.uber.org/zap"
)

type handle struct {
	ref  entity.FileRef
	file *os.File
}

// Manager owns the local file handles behind image previews. Discipline:
// acquire on select, release on remove or replace, release everything on
// close. Handles held open past their preview would otherwise accumulate
// for the life of the run.
type Manager struct {
	mu      sync.Mutex
	handles map[string]*handle
	logger  *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		handles: make(map[string]*handle),
		logger:  logger,
	}
}

// Acquire opens one file for previewing. Re-acquiring a name that is
// already held releases the old handle first.
func (m *Manager) Acquire(path string) (entity.FileRef, error) {
	file, err := os.Open(path)
	if err != nil {
		return entity.FileRef{}, fmt.Errorf("open image: %w", err)
	}

	ref := entity.FileRef{Name: filepath.Base(path), Path: path}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.handles[ref.Name]; ok {
		old.file.Close()
	}
	m.handles[ref.Name] = &handle{ref: ref, file: file}

	m.logger.Debug("image acquired", zap.String("name", ref.Name))

	return ref, nil
}

// Replace swaps the whole selection: every held handle is released, then
// the given paths are acquired.
func (m *Manager) Replace(paths []string) ([]entity.FileRef, error) {
	m.ReleaseAll()

	refs := make([]entity.FileRef, 0, len(paths))
	for _, path := range paths {
		ref, err := m.Acquire(path)
		if err != nil {
			m.ReleaseAll()
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// Remove releases a single handle by file name.
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.handles[name]; ok {
		h.file.Close()
		delete(m.handles, name)
		m.logger.Debug("image released", zap.String("name", name))
	}
}

// Files returns the currently held refs in no particular order.
func (m *Manager) Files() []entity.FileRef {
	m.mu.Lock()
	defer m.mu.Unlock()

	refs := make([]entity.FileRef, 0, len(m.handles))
	for _, h := range m.handles {
		refs = append(refs, h.ref)
	}
	return refs
}

// Len reports how many handles are currently held.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

// ReleaseAll closes every held handle.
func (m *Manager) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, h := range m.handles {
		h.file.Close()
		delete(m.handles, name)
	}
}
