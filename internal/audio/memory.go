package audio

import (
	"fmt"
	"os"

	"github.com/handiism/tagtidy/internal/model"
)

// MemoryStore is a Store that keeps tag sets in memory.
//
// Every Open returns a private copy of the stored tags; Save commits the
// copy back. Opens and saves are counted per path so callers can observe
// the I/O pattern.
type MemoryStore struct {
	tags      map[string]map[string]model.Values
	saveErr   map[string]error
	opens     map[string]int
	saves     map[string]int
	openOrder []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tags:    make(map[string]map[string]model.Values),
		saveErr: make(map[string]error),
		opens:   make(map[string]int),
		saves:   make(map[string]int),
	}
}

// Put stores a tag set under path, replacing any previous one.
func (s *MemoryStore) Put(path string, tags map[string]model.Values) {
	s.tags[path] = cloneTags(tags)
}

// Tags returns a copy of the tag set stored under path.
func (s *MemoryStore) Tags(path string) map[string]model.Values {
	return cloneTags(s.tags[path])
}

// FailSave makes every later Save of path return err.
func (s *MemoryStore) FailSave(path string, err error) {
	s.saveErr[path] = err
}

// Opens returns how many times path was opened.
func (s *MemoryStore) Opens(path string) int {
	return s.opens[path]
}

// Saves returns how many times path was saved.
func (s *MemoryStore) Saves(path string) int {
	return s.saves[path]
}

// TotalOpens returns the number of opens across all paths.
func (s *MemoryStore) TotalOpens() int {
	return len(s.openOrder)
}

// Open implements Store.
func (s *MemoryStore) Open(path string) (File, error) {
	tags, ok := s.tags[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	s.opens[path]++
	s.openOrder = append(s.openOrder, path)
	return &memoryFile{store: s, path: path, tags: cloneTags(tags)}, nil
}

type memoryFile struct {
	store *MemoryStore
	path  string
	tags  map[string]model.Values
}

func (f *memoryFile) Path() string {
	return f.path
}

func (f *memoryFile) Get(name string) (model.Values, bool) {
	v, ok := f.tags[model.NormalizeField(name)]
	return v.Clone(), ok
}

func (f *memoryFile) Has(name string) bool {
	_, ok := f.tags[model.NormalizeField(name)]
	return ok
}

func (f *memoryFile) Delete(name string) bool {
	name = model.NormalizeField(name)
	if _, ok := f.tags[name]; !ok {
		return false
	}
	delete(f.tags, name)
	return true
}

func (f *memoryFile) Save() error {
	if err := f.store.saveErr[f.path]; err != nil {
		return err
	}
	f.store.saves[f.path]++
	f.store.tags[f.path] = cloneTags(f.tags)
	return nil
}

func (f *memoryFile) Close() error {
	return nil
}

func cloneTags(tags map[string]model.Values) map[string]model.Values {
	out := make(map[string]model.Values, len(tags))
	for name, v := range tags {
		out[model.NormalizeField(name)] = v.Clone()
	}
	return out
}
