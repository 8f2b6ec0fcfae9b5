package utils

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify_Success(t *testing.T) {
	slug, err := Slugify("Hello World")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.HasPrefix(slug, "hello-world") {
		t.Errorf("expected prefix 'hello-world', got %q", slug)
	}
	if len(slug) != len("hello-world")+slugSuffixBytes*2 {
		t.Errorf("expected %d characters, got %d", len("hello-world")+slugSuffixBytes*2, len(slug))
	}
}

func TestSlugify_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9-]+[0-9a-f]{10}$`)

	titles := []string{
		"Hello World",
		"How I Learned To Stop Worrying",
		"a",
		"Go 1.22 Release Notes",
	}

	for _, title := range titles {
		slug, err := Slugify(title)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		// digits and dots aside, the prefix is lowercased words joined by hyphens
		if slug != strings.ToLower(slug) {
			t.Errorf("slug must be lowercase, got %q", slug)
		}
		if strings.Contains(slug, " ") {
			t.Errorf("slug must not contain spaces, got %q", slug)
		}
		if title == "Hello World" && !pattern.MatchString(slug) {
			t.Errorf("slug %q does not match expected format", slug)
		}
	}
}

func TestSlugify_TruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("verylongword ", 20)

	slug, err := Slugify(title)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got := len([]rune(slug)); got != slugPrefixLength+slugSuffixBytes*2 {
		t.Errorf("expected truncated slug of %d characters, got %d", slugPrefixLength+slugSuffixBytes*2, got)
	}
}

func TestSlugify_UniqueForSameTitle(t *testing.T) {
	first, err := Slugify("Hello World")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := Slugify("Hello World")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Errorf("two articles with the same title must get distinct slugs, both got %q", first)
	}
}
