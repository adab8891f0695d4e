package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"GophSession/internal/cli/repo"
)

func TestLocalStorage_SetGet_TrimsWhitespace(t *testing.T) {
	st := New(t.TempDir())
	if err := st.SetItem(repo.TokenKey, "tok-123\n\n"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	// дописываем вручную лишние пробелы в конец файла, чтобы проверить trim
	f, _ := os.OpenFile(filepath.Join(st.Dir, repo.TokenKey), os.O_APPEND|os.O_WRONLY, 0o600)
	_, _ = f.WriteString("  \r\n\t")
	_ = f.Close()

	tok, err := st.GetItem(repo.TokenKey)
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token not trimmed, got %q", tok)
	}
}

func TestLocalStorage_Get_MissingOrEmpty(t *testing.T) {
	st := New(t.TempDir())
	// отсутствует файл
	if _, err := st.GetItem(repo.TokenKey); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing file, got %v", err)
	}
	// пустой файл
	if err := os.WriteFile(filepath.Join(st.Dir, repo.TokenKey), []byte(" \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := st.GetItem(repo.TokenKey); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank file, got %v", err)
	}
}

func TestLocalStorage_Remove(t *testing.T) {
	st := New(t.TempDir())
	if err := st.SetItem(repo.TokenKey, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.RemoveItem(repo.TokenKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(st.Dir, repo.TokenKey)); !os.IsNotExist(err) {
		t.Fatalf("token file must be gone, stat err=%v", err)
	}
	// повторное удаление не ошибка
	if err := st.RemoveItem(repo.TokenKey); err != nil {
		t.Fatalf("second remove must succeed: %v", err)
	}
}

func TestLocalStorage_CreatesDirAndPerms(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cfg")
	st := New(dir)
	if err := st.SetItem("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, "k"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("file perms want 0600, got %o", fi.Mode().Perm())
	}
}

func TestLocalStorage_InvalidKey(t *testing.T) {
	st := New(t.TempDir())
	if err := st.SetItem("../escape", "x"); err == nil {
		t.Fatalf("expected error for path-like key")
	}
	if _, err := (LocalStorage{}).GetItem("token"); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
