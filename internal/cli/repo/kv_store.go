package repo

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound возвращается из Get, когда ключ отсутствует в хранилище.
var ErrNotFound = errors.New("key not found")

// KVStore - клиентское персистентное key-value хранилище (аналог localStorage).
type KVStore interface {
	// Get возвращает значение по ключу или ErrNotFound.
	Get(key string) (string, error)
	// Set сохраняет значение, перезаписывая существующее.
	Set(key, value string) error
	// Delete удаляет ключ. Удаление отсутствующего ключа не ошибка.
	Delete(key string) error
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateKey checks that key is safe to use as a file name and a SQL value.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if !keyRe.MatchString(key) {
		return fmt.Errorf("invalid key: %q (allowed: letters, digits, . _ -)", key)
	}
	return nil
}
