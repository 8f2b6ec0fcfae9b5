package utils

import "strings"

// wordsPerMinute is the average adult reading speed the estimate is based on.
const wordsPerMinute = 200

// ReadTime estimates how many minutes it takes to read body, assuming 200
// words per minute. The estimate is deterministic and never reports less
// than one minute, so even a one-line article shows a read time.
func ReadTime(body string) int {
	words := len(strings.Fields(body))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// Description derives an article's description: the first 100 characters
// of the body, or the full body when it is shorter.
func Description(body string) string {
	const descriptionLength = 100

	if runes := []rune(body); len(runes) > descriptionLength {
		return string(runes[:descriptionLength])
	}

	return body
}
