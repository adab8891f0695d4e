package repo

import (
	"errors"
	"fmt"
	"regexp"
)

// TokenKey is the storage key the session token lives under.
const TokenKey = "token"

// ErrNotFound is returned by GetItem when the key is absent or empty.
var ErrNotFound = errors.New("storage: key not found")

// LocalStorage is a durable string key/value store on the client.
// RemoveItem on a missing key is not an error.
type LocalStorage interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateKey checks that key is safe to use as a file name and a row key.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("storage: key is required")
	}
	if !keyRe.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key %q (allowed: letters, digits, . _ -)", key)
	}
	return nil
}
