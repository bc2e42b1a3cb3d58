package repositoryImp

import (
	"sync"

	"sprout/pkg/store/repository"
)

// memStore keeps records in a plain map. Built per test so cases never share
// state through a package-level collection.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemory() repository.Store { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(uid, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[uid+"\x00"+key]
	return v, ok, nil
}

func (m *memStore) Set(uid, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[uid+"\x00"+key] = value
	return nil
}
