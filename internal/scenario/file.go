package scenario

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

// FileStore keeps all scenarios in a single JSON document on disk.
// Every write rewrites the document through a temporary file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileDocument struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

// NewFileStore creates a store backed by path; the file is created on first write.
func NewFileStore(path string) (*FileStore, error) {
	fsStore := &FileStore{path: path}
	if _, err := fsStore.load(); err != nil {
		return nil, err
	}
	return fsStore, nil
}

// Verify interface compliance
var _ Store = (*FileStore)(nil)

func (f *FileStore) load() ([]domain.Scenario, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", f.path, err)
	}
	return doc.Scenarios, nil
}

func (f *FileStore) save(list []domain.Scenario) error {
	data, err := json.MarshalIndent(fileDocument{Scenarios: list}, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".scenarios-*.json")
	if err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *FileStore) Create(_ context.Context, s domain.Scenario) (domain.Scenario, error) {
	s, err := prepare(s)
	if err != nil {
		return domain.Scenario{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.load()
	if err != nil {
		return domain.Scenario{}, err
	}
	if err := f.save(append(list, s)); err != nil {
		return domain.Scenario{}, err
	}
	return s, nil
}

func (f *FileStore) List(_ context.Context, userID string) ([]domain.Scenario, error) {
	f.mu.Lock()
	list, err := f.load()
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Scenario, 0)
	for _, s := range list {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *FileStore) Delete(_ context.Context, id, userID string) error {
	if err := checkDelete(id, userID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list, err := f.load()
	if err != nil {
		return err
	}
	for i, s := range list {
		if s.ID == id && s.UserID == userID {
			return f.save(append(list[:i], list[i+1:]...))
		}
	}
	return ErrNotFound
}
