package service

import (
	"errors"

	"RegistryAdmin/internal/repo"
)

var (
	// ErrNotFound - запрошенная сущность отсутствует.
	ErrNotFound = repo.ErrNotFound
	// ErrAlreadyExists - сущность с таким идентификатором уже есть.
	ErrAlreadyExists = repo.ErrAlreadyExists
	// ErrInUse - сущность нельзя удалить, на неё есть ссылки.
	ErrInUse = repo.ErrInUse
	// ErrInvalidInput - запрос не прошёл валидацию.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials - неверный логин или пароль администратора.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
