package repo

import "testing"

func TestValidateKey(t *testing.T) {
	for _, k := range []string{"token", "last_login", "a.b-c_1"} {
		if err := ValidateKey(k); err != nil {
			t.Fatalf("key %q must be valid: %v", k, err)
		}
	}
	for _, k := range []string{"", ".", "..", "a/b", "with space", "../token"} {
		if err := ValidateKey(k); err == nil {
			t.Fatalf("key %q must be rejected", k)
		}
	}
}
