package models

import (
	"math"
	"time"
)

// Article statuses. An article is created as a draft unless the author
// publishes it explicitly.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is a single piece of writing owned by one author.
//
// Slug, Description, and ReadTime are derived fields recomputed from the
// title and body on every create and update. Ratings is append-only: a
// reader may rate the same article multiple times and every vote counts.
type Article struct {
	// ID is the internal unique identifier of the article.
	ID int64 `json:"-"`

	// AuthorID references the owning user.
	AuthorID int64 `json:"-"`

	Title string `json:"title"`
	Body  string `json:"body"`

	// Description is the first 100 characters of the body.
	Description string `json:"description"`

	// Slug is the URL-safe identifier: lowercased hyphenated title prefix
	// plus a random hexadecimal suffix guaranteeing global uniqueness.
	Slug string `json:"slug"`

	// Status is either StatusDraft or StatusPublished.
	Status string `json:"status,omitempty"`

	// Deleted marks a soft-deleted article. Soft-deleted articles are
	// excluded from every read query but the row is never removed.
	Deleted bool `json:"-"`

	// TagList is the ordered sequence of tags supplied by the author.
	TagList []string `json:"tagList"`

	// ReadTime is the estimated reading time of the body, in minutes.
	ReadTime int `json:"readTime"`

	// Ratings is the append-only history of numeric ratings.
	Ratings []int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is the public profile of the owning user, attached by read
	// operations. Nil when the projection does not include it.
	Author *Profile `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "articles"
}

// AverageRating is the arithmetic mean of the full rating history rounded
// to two decimal places. An article with no ratings averages 0.
func (a Article) AverageRating() float64 {
	if len(a.Ratings) == 0 {
		return 0
	}

	var sum int64
	for _, r := range a.Ratings {
		sum += r
	}

	avg := float64(sum) / float64(len(a.Ratings))
	return math.Round(avg*100) / 100
}
