// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for password hashing. The values match the credential
// format already persisted for existing accounts, so changing any of them
// invalidates every stored hash.
const (
	kdfIterations = 1000
	kdfKeyLength  = 64
	saltLength    = 16
)

// GenerateSalt produces a fresh per-user salt: 16 random bytes from the OS
// CSPRNG, hex-encoded. A new salt is generated at registration and on every
// password reset.
//
// Returns:
//
//	string - hex-encoded 16-byte salt (32 characters)
//	error  - non-nil if the random read fails
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	return hex.EncodeToString(salt), nil
}

// HashPassword derives a credential hash from a plaintext password and a
// per-user salt using PBKDF2-SHA512 with 1000 iterations and a 64-byte
// output, hex-encoded.
//
// The password is never stored; only the derivation is. Storing a bare
// digest without a per-record salt is explicitly disallowed.
//
// Parameters:
//
//	password - the plaintext password to derive from
//	salt     - the user's hex-encoded salt
//
// Returns:
//
//	string - hex-encoded 64-byte PBKDF2 derivation (128 characters)
//
// Example usage:
//
//	hash := utils.HashPassword("s3cret", user.Salt)
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, kdfKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the PBKDF2 derivation of password under salt
// and compares it to the stored hash in constant time.
func VerifyPassword(password, salt, hash string) bool {
	return hmac.Equal([]byte(HashPassword(password, salt)), []byte(hash))
}
