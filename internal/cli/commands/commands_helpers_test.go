package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"GophSession/internal/cli/repo"
	fsrepo "GophSession/internal/cli/repo/fs"
	"GophSession/internal/config"
)

// testConfig создаёт конфиг с файловым хранилищем во временном каталоге,
// чтобы артефакты (токен/база) создавались в temp.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:     serverURL,
		StorageDriver: config.StorageFile,
		StorageDir:    dir,
		ClientDBPath:  filepath.Join(dir, "client.sqlite"),
	}
}

// storedToken читает токен из файлового хранилища конфига.
func storedToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	v, err := fsrepo.New(cfg.StorageDir).GetItem(repo.TokenKey)
	if err != nil {
		return ""
	}
	return v
}

func putToken(t *testing.T, cfg *config.Config, tok string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(cfg.StorageDir, repo.TokenKey), []byte(tok), 0o600); err != nil {
		t.Fatalf("put token: %v", err)
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
