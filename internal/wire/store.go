package wire

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gridref/internal/a1"
)

// Store хранит сериализованные выделения на диске по имени.
// Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// OpenStore initializes and returns a store at the standard cache location.
func OpenStore(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// OpenStoreAt открывает хранилище в явно заданном каталоге.
func OpenStoreAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(name string) string {
	// Подкаталог "selections" — для удобства читаемости/очистки.
	return filepath.Join(s.dir, "selections", name+".mp")
}

// Put сериализует выделение и атомарно записывает его под именем name.
func (s *Store) Put(name string, sel a1.Selection) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := EncodeSelection(sel)
	if err != nil {
		return err
	}

	p := s.pathFor(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get читает выделение по имени. ok == false, если записи нет.
func (s *Store) Get(name string, ctx *a1.Context) (a1.Selection, bool, error) {
	if s == nil {
		return a1.Selection{}, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return a1.Selection{}, false, nil
		}
		return a1.Selection{}, false, err
	}
	sel, err := DecodeSelection(data, ctx)
	if err != nil {
		return a1.Selection{}, false, err
	}
	return sel, true, nil
}

// Drop удаляет запись; отсутствие записи не ошибка.
func (s *Store) Drop(name string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.pathFor(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
