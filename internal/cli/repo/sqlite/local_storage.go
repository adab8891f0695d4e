package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"GophSession/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// LocalStorage — хранилище ключей клиента в локальной БД SQLite.
type LocalStorage struct {
	db *sql.DB
}

var _ repo.LocalStorage = (*LocalStorage)(nil)

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath.
func Open(dbPath string) (*LocalStorage, error) {
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
	return &LocalStorage{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *LocalStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы local_storage.
func (s *LocalStorage) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// GetItem возвращает значение ключа или repo.ErrNotFound.
func (s *LocalStorage) GetItem(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	var v string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	v = strings.TrimRight(v, " \t\r\n")
	if v == "" {
		return "", repo.ErrNotFound
	}
	return v, nil
}

// SetItem вставляет или заменяет значение ключа.
func (s *LocalStorage) SetItem(key, value string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO local_storage(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// RemoveItem удаляет ключ; отсутствие ключа не ошибка.
func (s *LocalStorage) RemoveItem(key string) error {
	if err := repo.ValidateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}
