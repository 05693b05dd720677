package persistence_test

import (
	"errors"
	"houseprojects/persistence"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newStore(t *testing.T) *persistence.FileStore {
	dir, err := os.MkdirTemp("", "filestore_test_")
	assert.Nil(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return persistence.NewFileStore(filepath.Join(dir, "data"))
}

func TestFileStoreStart(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should create data dir and empty collection files", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())

		for _, c := range persistence.Collections {
			content, err := os.ReadFile(s.Path(c))
			Expect(err).To(BeNil())
			Expect(string(content)).To(Equal("[]"))
		}
	})

	t.Run("should keep existing collection files", func(t *testing.T) {
		s := newStore(t)
		Expect(os.MkdirAll(s.Dir, 0755)).To(BeNil())
		Expect(os.WriteFile(s.Path(persistence.CollectionNames), []byte(`[{"id":1,"name":"Alice"}]`), 0644)).To(BeNil())
		Expect(s.Start()).To(BeNil())

		var names []record
		Expect(s.Load(persistence.CollectionNames, &names)).To(BeNil())
		Expect(names).To(Equal([]record{{ID: 1, Name: "Alice"}}))
	})
}

func TestFileStoreLoadAndSave(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should create missing file on first load", func(t *testing.T) {
		s := newStore(t)
		Expect(os.MkdirAll(s.Dir, 0755)).To(BeNil())

		var records []record
		Expect(s.Load(persistence.CollectionGroups, &records)).To(BeNil())
		Expect(records).To(BeEmpty())
		_, err := os.Stat(s.Path(persistence.CollectionGroups))
		Expect(err).To(BeNil())
	})

	t.Run("should write pretty printed json arrays", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())

		Expect(s.Save(persistence.CollectionNames, []record{{ID: 1, Name: "Alice"}})).To(BeNil())
		content, err := os.ReadFile(s.Path(persistence.CollectionNames))
		Expect(err).To(BeNil())
		Expect(string(content)).To(Equal("[\n  {\n    \"id\": 1,\n    \"name\": \"Alice\"\n  }\n]"))

		var nilRecords []record
		Expect(s.Save(persistence.CollectionNames, nilRecords)).To(BeNil())
		content, err = os.ReadFile(s.Path(persistence.CollectionNames))
		Expect(err).To(BeNil())
		Expect(string(content)).To(Equal("[]"))
	})

	t.Run("should report corrupted file as io error", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())
		Expect(os.WriteFile(s.Path(persistence.CollectionProjects), []byte("{not json"), 0644)).To(BeNil())

		var records []record
		err := s.Load(persistence.CollectionProjects, &records)
		var ioErr *persistence.IOError
		Expect(errors.As(err, &ioErr)).To(BeTrue())
		Expect(ioErr.Op).To(Equal(persistence.OpRead))
		Expect(ioErr.Collection).To(Equal(persistence.CollectionProjects))
		Expect(ioErr.Respond().Status).To(Equal(http.StatusInternalServerError))
		Expect(ioErr.Respond().Message).To(Equal("could not load projects"))
	})

	t.Run("should report unwritable dir as io error", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())
		Expect(os.RemoveAll(s.Dir)).To(BeNil())

		err := s.Save(persistence.CollectionProjects, []record{})
		var ioErr *persistence.IOError
		assert.True(t, errors.As(err, &ioErr))
		assert.Equal(t, persistence.OpWrite, ioErr.Op)
		assert.Equal(t, "could not save projects", ioErr.Respond().Message)
	})
}

func TestFileStoreMutate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should persist mutation", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())

		var records []record
		Expect(s.Mutate(persistence.CollectionNames, &records, func() error {
			records = append(records, record{ID: 1, Name: "Alice"})
			return nil
		})).To(BeNil())

		var loaded []record
		Expect(s.Load(persistence.CollectionNames, &loaded)).To(BeNil())
		Expect(loaded).To(Equal([]record{{ID: 1, Name: "Alice"}}))
	})

	t.Run("should not write when mutation failed", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())

		testErr := errors.New("test error")
		var records []record
		err := s.Mutate(persistence.CollectionNames, &records, func() error {
			records = append(records, record{ID: 1, Name: "Alice"})
			return testErr
		})
		Expect(err).To(Equal(testErr))

		var loaded []record
		Expect(s.Load(persistence.CollectionNames, &loaded)).To(BeNil())
		Expect(loaded).To(BeEmpty())
	})

	t.Run("should serialize concurrent mutations of one collection", func(t *testing.T) {
		s := newStore(t)
		Expect(s.Start()).To(BeNil())

		wg := sync.WaitGroup{}
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				var records []record
				assert.Nil(t, s.Mutate(persistence.CollectionNames, &records, func() error {
					records = append(records, record{ID: id})
					return nil
				}))
			}(i)
		}
		wg.Wait()

		var loaded []record
		Expect(s.Load(persistence.CollectionNames, &loaded)).To(BeNil())
		Expect(len(loaded)).To(Equal(20))
	})
}
