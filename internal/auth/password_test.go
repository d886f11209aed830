package auth

import "testing"

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same input must differ (random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword("correct horse", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("wrong horse", hash) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"} {
		if CheckPassword("anything", malformed) {
			t.Errorf("malformed hash %q must not verify", malformed)
		}
	}
}
