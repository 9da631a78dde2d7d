package repo

import (
	"errors"
	"fmt"
	"strings"

	"RegistryAdmin/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound - запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInUse - запись нельзя удалить, на неё ссылаются.
	ErrInUse = errors.New("in use")
)

// InitDB открывает БД и выполняет миграции. DSN вида postgres://... или host=...
// открывается драйвером PostgreSQL, всё остальное трактуется как путь к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	// modernc.org/sqlite регистрирует драйвер под именем "sqlite"
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// Migrate создаёт таблицы всех моделей сервера.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Customer{}, &model.ServiceProvider{}, &model.Endpoint{}, &model.Service{}, &model.CustomerServiceRef{})
}

// translateError сводит нарушения уникальности к ErrAlreadyExists.
// Postgres переводит сам gorm (TranslateError), ошибки modernc разбираем по коду:
// транслятор gorm/sqlite их не распознаёт.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
	}
	return err
}
