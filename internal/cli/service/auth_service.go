package service

import "context"

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login получает токен сессии у сервера и сохраняет его локально.
	Login(ctx context.Context, login, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает логин текущего пользователя, если он установлен.
	CurrentUser() (string, error)
}
