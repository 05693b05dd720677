package testinfra

import (
	"houseprojects/persistence"
	"log"
	"os"
)

type TestFileStore struct {
	Dir   string
	Store *persistence.FileStore
}

// StartTestFileStore creates a file store in a fresh temporary directory and makes it the active store.
func StartTestFileStore() *TestFileStore {
	dir, err := os.MkdirTemp("", "houseprojects_test_")
	if err != nil {
		log.Fatalf("failed to create test data dir %v\n", err)
	}

	store := persistence.NewFileStore(dir)
	if err := store.Start(); err != nil {
		log.Fatalf("failed to start test file store %v\n", err)
	}
	persistence.ActiveFileStore = store
	return &TestFileStore{Dir: dir, Store: store}
}

func StopTestFileStore(testStore *TestFileStore) {
	if testStore == nil {
		return
	}
	if testStore.Store != nil {
		testStore.Store.Stop()
	}
	if err := os.RemoveAll(testStore.Dir); err != nil {
		log.Println("failed to remove test data dir: " + testStore.Dir)
	}
}
