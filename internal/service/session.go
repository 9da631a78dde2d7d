package service

import (
	"crypto/subtle"

	"RegistryAdmin/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// SessionService проверяет учётные данные администратора.
// Выдача токена - забота middleware.IssueToken.
type SessionService struct {
	creds config.Credentials
}

func NewSessionService(creds config.Credentials) *SessionService {
	return &SessionService{creds: creds}
}

// Authenticate сверяет логин и пароль с конфигурацией. Если задан PasswordHash,
// пароль проверяется через bcrypt, иначе сравнивается с Password.
// Без настроенных учётных данных вход невозможен.
func (s *SessionService) Authenticate(username, password string) error {
	if s.creds.Empty() || s.creds.Username == "" || username == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) != 1 {
		return ErrInvalidCredentials
	}
	if s.creds.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if s.creds.Password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
