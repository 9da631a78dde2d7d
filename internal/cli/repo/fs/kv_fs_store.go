package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"RegistryAdmin/internal/cli/repo"
)

// Store - файловое key-value хранилище: один файл на ключ внутри Dir.
type Store struct {
	Dir string
}

var _ repo.KVStore = Store{}

// DefaultDir возвращает каталог клиента внутри пользовательского конфиг‑каталога.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "RegistryAdmin"), nil
}

// NewStore создаёт хранилище в dir; пустой dir означает DefaultDir.
func NewStore(dir string) (Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return Store{}, err
		}
		dir = d
	}
	return Store{Dir: dir}, nil
}

func (s Store) path(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, key), nil
}

// Get читает значение ключа. Завершающие пробелы/переводы строк обрезаются.
func (s Store) Get(key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// Set записывает значение ключа с правами 0600.
func (s Store) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Delete удаляет файл ключа.
func (s Store) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
