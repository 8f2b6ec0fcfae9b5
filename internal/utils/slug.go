package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// slugPrefixLength caps the human-readable part of a slug.
	slugPrefixLength = 40

	// slugSuffixBytes is the number of random bytes appended (hex-encoded)
	// to make the slug globally unique even for duplicate titles.
	slugSuffixBytes = 5
)

// Slugify derives a URL-safe, globally unique slug from an article title.
//
// The title is lowercased, spaces are replaced with hyphens, the result is
// truncated to 40 characters, and 5 random bytes are appended as 10 hex
// characters. Two articles titled "Hello World" therefore get slugs like
// "hello-world1a2b3c4d5e" and "hello-world6f7a8b9c0d".
//
// Returns an error only if the OS CSPRNG read fails.
func Slugify(title string) (string, error) {
	suffix := make([]byte, slugSuffixBytes)
	if _, err := io.ReadFull(rand.Reader, suffix); err != nil {
		return "", fmt.Errorf("error generating slug suffix: %w", err)
	}

	prefix := strings.Join(strings.Split(strings.ToLower(title), " "), "-")
	if runes := []rune(prefix); len(runes) > slugPrefixLength {
		prefix = string(runes[:slugPrefixLength])
	}

	return prefix + hex.EncodeToString(suffix), nil
}
