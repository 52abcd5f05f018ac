package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Kind names a per-user slot in the local store. The keys mirror the
// on-device storage the mobile app used: cart_<uid>, favorites_<uid>,
// searchHistory_<uid>, lang_<uid>.
type Kind string

const (
	KindCart          Kind = "cart"
	KindFavorites     Kind = "favorites"
	KindSearchHistory Kind = "searchHistory"
	KindLanguage      Kind = "lang"
)

// Store is a typed facade over the key-value namespace, isolating the
// key-naming scheme from call sites. A missing key decodes to the zero
// value without error, matching read-of-absent-key semantics.
type Store interface {
	Get(userID string, kind Kind, v interface{}) error
	Put(userID string, kind Kind, v interface{}) error
	Delete(userID string, kind Kind) error
}

type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore persists each key as a JSON file under dir.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(userID string, kind Kind) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", kind, userID))
}

func (s *fileStore) Get(userID string, kind Kind, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(userID, kind))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

func (s *fileStore) Put(userID string, kind Kind, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(userID, kind), data, 0o644)
}

func (s *fileStore) Delete(userID string, kind Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(userID, kind))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
