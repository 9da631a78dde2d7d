// Package session хранит bearer-токен админ-клиента в клиентском key-value хранилище.
package session

import (
	"errors"

	"RegistryAdmin/internal/cli/api"
	"RegistryAdmin/internal/cli/repo"

	"go.uber.org/zap"
)

const (
	// TokenKey - ключ, под которым хранится токен сессии.
	TokenKey = "session"
	// UserKey - ключ с логином последнего вошедшего пользователя.
	UserKey = "user"
)

// Accessor читает и пишет токен сессии. Реализует api.TokenProvider.
type Accessor struct {
	store  repo.KVStore
	logger *zap.SugaredLogger
}

var _ api.TokenProvider = (*Accessor)(nil)

// New создаёт accessor поверх store. logger может быть nil.
func New(store repo.KVStore, logger *zap.SugaredLogger) *Accessor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Accessor{store: store, logger: logger}
}

// Token возвращает сохранённый токен или "" если его нет.
// Ошибка чтения хранилища логируется и трактуется как отсутствие токена.
func (a *Accessor) Token() string {
	v, err := a.store.Get(TokenKey)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			a.logger.Warnw("failed to read session token", "error", err)
		}
		return ""
	}
	return v
}

// Save stores token; an empty token clears the session.
func (a *Accessor) Save(token string) error {
	if token == "" {
		return a.Clear()
	}
	return a.store.Set(TokenKey, token)
}

// SaveUser remembers the login of the authenticated user.
func (a *Accessor) SaveUser(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	return a.store.Set(UserKey, login)
}

// User returns the stored login, or "" if none.
func (a *Accessor) User() string {
	v, err := a.store.Get(UserKey)
	if err != nil {
		return ""
	}
	return v
}

// Clear удаляет токен и логин (logout).
func (a *Accessor) Clear() error {
	if err := a.store.Delete(TokenKey); err != nil {
		return err
	}
	return a.store.Delete(UserKey)
}
