package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_ReturnsBcryptHash(t *testing.T) {
	hash, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "pass1" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("HashPassword() output does not look like bcrypt: %q", hash)
	}
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	hash1, _ := HashPassword("same-password")
	hash2, _ := HashPassword("same-password")
	if hash1 == hash2 {
		t.Error("two hashes of the same password are identical; salt must be random")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(hash, "correct-password") {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword(hash, "") {
		t.Error("CheckPassword() = true for an empty password")
	}
	if CheckPassword("not-a-bcrypt-hash", "correct-password") {
		t.Error("CheckPassword() = true for a garbage hash")
	}
}

func TestCheckPassword_NewHashInvalidatesOld(t *testing.T) {
	oldHash, _ := HashPassword("old-password")
	newHash, _ := HashPassword("new-password")

	if !CheckPassword(newHash, "new-password") {
		t.Error("new hash does not verify the new password")
	}
	if CheckPassword(newHash, "old-password") {
		t.Error("new hash still verifies the old password")
	}
	if CheckPassword(oldHash, "new-password") {
		t.Error("old hash verifies the new password")
	}
}
