package models

import "time"

// Bookmark is a saved-article reference: a junction between a reader and
// an article with no attributes of its own beyond the two foreign keys.
// At most one bookmark exists per (user, article) pair.
type Bookmark struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	ArticleID int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkedArticle is the read projection of a bookmark: the saved
// article's headline fields plus a minimal author profile.
type BookmarkedArticle struct {
	Title  string   `json:"title"`
	Slug   string   `json:"slug"`
	Author *Profile `json:"author,omitempty"`
}
