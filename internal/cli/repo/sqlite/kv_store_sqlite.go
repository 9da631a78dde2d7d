package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"RegistryAdmin/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// Store - key-value хранилище клиента в локальной БД SQLite.
type Store struct {
	db *sql.DB
}

var _ repo.KVStore = (*Store)(nil)

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath
// и выполняет миграции.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close закрывает соединение с БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы kv.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

func (s *Store) Get(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

func (s *Store) Delete(key string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
