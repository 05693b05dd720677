package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	CollectionProjects = "projects"
	CollectionGroups   = "groups"
	CollectionNames    = "names"
)

var (
	Collections = []string{CollectionProjects, CollectionGroups, CollectionNames}

	ActiveFileStore *FileStore
)

// FileStore keeps every collection as a pretty printed JSON array in its own file under Dir.
// Each mutation rewrites the whole file.
type FileStore struct {
	Dir string

	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	locks := map[string]*sync.Mutex{}
	for _, c := range Collections {
		locks[c] = &sync.Mutex{}
	}
	return &FileStore{Dir: dir, locks: locks}
}

func (s *FileStore) Start() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return &IOError{Op: OpInit, Collection: "", Err: err}
	}
	for _, c := range Collections {
		if err := s.ensureFileExists(c); err != nil {
			return err
		}
	}
	logrus.Infof("file store started at %s", s.Dir)
	return nil
}

func (s *FileStore) Stop() {
	logrus.Infof("file store at %s stopped", s.Dir)
}

func (s *FileStore) Path(collection string) string {
	return filepath.Join(s.Dir, collection+".json")
}

// Load decodes the whole collection into records, which must be a pointer to a slice.
func (s *FileStore) Load(collection string, records interface{}) error {
	if err := s.ensureFileExists(collection); err != nil {
		return err
	}
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		return &IOError{Op: OpRead, Collection: collection, Err: err}
	}
	if err := json.Unmarshal(data, records); err != nil {
		return &IOError{Op: OpRead, Collection: collection, Err: err}
	}
	return nil
}

// Save replaces the whole collection with records.
func (s *FileStore) Save(collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &IOError{Op: OpWrite, Collection: collection, Err: err}
	}
	if string(data) == "null" {
		data = []byte("[]")
	}
	return s.writeFile(collection, data)
}

// Mutate runs load, mutate and save for one collection while holding the collection lock.
// Nothing is written when mutate returns an error.
func (s *FileStore) Mutate(collection string, records interface{}, mutate func() error) error {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	if err := s.Load(collection, records); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.Save(collection, records)
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	if l, ok := s.locks[collection]; ok {
		return l
	}
	panic(fmt.Sprintf("unknown collection '%s'", collection))
}

func (s *FileStore) ensureFileExists(collection string) error {
	_, err := os.Stat(s.Path(collection))
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return &IOError{Op: OpInit, Collection: collection, Err: err}
	}
	return s.writeFile(collection, []byte("[]"))
}

func (s *FileStore) writeFile(collection string, data []byte) error {
	tmp, err := os.CreateTemp(s.Dir, collection+".*.tmp")
	if err != nil {
		return &IOError{Op: OpWrite, Collection: collection, Err: err}
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &IOError{Op: OpWrite, Collection: collection, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: OpWrite, Collection: collection, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.Path(collection)); err != nil {
		return &IOError{Op: OpWrite, Collection: collection, Err: err}
	}
	return nil
}
