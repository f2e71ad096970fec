package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatalf("password stored in plaintext")
	}

	if err := CheckPassword("correct horse battery", hash); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := CheckPassword("wrong password", hash); err == nil {
		t.Fatalf("wrong password accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Fatalf("short password accepted")
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}
