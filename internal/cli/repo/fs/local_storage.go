package fs

import (
	"errors"
	"os"
	"path/filepath"

	"GophSession/internal/cli/repo"
)

// LocalStorage — файловое хранилище ключей клиента: один файл на ключ внутри Dir.
type LocalStorage struct {
	Dir string
}

var _ repo.LocalStorage = LocalStorage{}

// New returns a file storage rooted at dir.
func New(dir string) LocalStorage {
	return LocalStorage{Dir: dir}
}

func (s LocalStorage) path(key string) (string, error) {
	if err := repo.ValidateKey(key); err != nil {
		return "", err
	}
	if s.Dir == "" {
		return "", errors.New("storage: empty directory")
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, key), nil
}

// SetItem сохраняет значение ключа в файл.
func (s LocalStorage) SetItem(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// GetItem читает значение ключа из файла.
func (s LocalStorage) GetItem(key string) (string, error) {
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
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", repo.ErrNotFound
	}
	return string(b), nil
}

// RemoveItem удаляет файл ключа.
func (s LocalStorage) RemoveItem(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
