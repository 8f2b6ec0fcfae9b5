// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(salt) != saltLength*2 {
		t.Errorf("expected %d hex characters, got %d", saltLength*2, len(salt))
	}
	if _, err := hex.DecodeString(salt); err != nil {
		t.Errorf("salt is not valid hex: %v", err)
	}
}

func TestGenerateSalt_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		salt, err := GenerateSalt()
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if seen[salt] {
			t.Fatalf("duplicate salt generated: %s", salt)
		}
		seen[salt] = true
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	password := "s3cret-password"
	salt := "0123456789abcdef0123456789abcdef"

	hash1 := HashPassword(password, salt)
	hash2 := HashPassword(password, salt)

	if hash1 != hash2 {
		t.Fatal("hash must be deterministic for the same password and salt")
	}
	if len(hash1) != kdfKeyLength*2 {
		t.Errorf("expected %d hex characters, got %d", kdfKeyLength*2, len(hash1))
	}

	// verify against direct PBKDF2 computation
	expected := hex.EncodeToString(pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, kdfKeyLength, sha512.New))
	if hash1 != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, hash1)
	}
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	password := "same-password"

	hash1 := HashPassword(password, "salt-one")
	hash2 := HashPassword(password, "salt-two")

	if hash1 == hash2 {
		t.Error("different salts must produce different hashes")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	hash := HashPassword("correct horse", salt)

	tests := []struct {
		name     string
		password string
		salt     string
		want     bool
	}{
		{"correct password", "correct horse", salt, true},
		{"wrong password", "battery staple", salt, false},
		{"wrong salt", "correct horse", "deadbeef", false},
		{"empty password", "", salt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, tt.salt, hash); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
