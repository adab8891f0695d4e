package bootstrap

import (
	"fmt"

	"GophSession/internal/cli/repo"
	fsrepo "GophSession/internal/cli/repo/fs"
	reposqlite "GophSession/internal/cli/repo/sqlite"
	"GophSession/internal/config"
)

// OpenStorage открывает локальное хранилище клиента согласно конфигурации,
// выполняет миграции и возвращает (storage, cleanup, error).
// cleanup необходимо вызвать после окончания работы с хранилищем.
func OpenStorage(cfg *config.Config) (repo.LocalStorage, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return s, s.Close, nil
	case config.StorageFile, "":
		return fsrepo.New(cfg.StorageDir), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
