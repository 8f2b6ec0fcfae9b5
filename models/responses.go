package models

// Response envelopes mirror the public API surface: every body carries the
// HTTP status code alongside its payload, and failures always reduce to a
// status plus a short human-readable message.

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// MessageResponse acknowledges an operation that produces no entity.
type MessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// UserResponse wraps a single user, optionally with a session token.
type UserResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token,omitempty"`
	User    UserBrief `json:"user"`
}

// UserBrief is the public user payload returned by the auth endpoints.
type UserBrief struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Status  int     `json:"status"`
	Article Article `json:"article"`
}

// ArticleViewResponse wraps a single article annotated with its like count.
type ArticleViewResponse struct {
	Status  int         `json:"status"`
	Article ArticleView `json:"article"`
}

// ArticleView is the read projection returned by the view endpoint.
type ArticleView struct {
	Article
	AverageRating float64 `json:"ratings"`
	Likes         int     `json:"likes"`
}

// ArticlesResponse wraps a list of articles with its length, matching the
// shape the feed and listing endpoints have always produced.
type ArticlesResponse struct {
	Status        int            `json:"status"`
	Articles      []RatedArticle `json:"articles"`
	ArticlesCount int            `json:"articlesCount"`
}

// RatedArticle is a listed article annotated with its average rating.
type RatedArticle struct {
	Article
	AverageRating float64 `json:"ratings"`
}

// BookmarkResponse confirms a newly created bookmark.
type BookmarkResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Data    BookmarkData `json:"data"`
}

// BookmarkData carries the bookmarked article's headline fields together
// with the author's username.
type BookmarkData struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// BookmarksResponse wraps the caller's saved articles.
type BookmarksResponse struct {
	Status int                 `json:"status"`
	Data   []BookmarkedArticle `json:"data"`
}

// BookmarkedArticleResponse wraps a single saved article.
type BookmarkedArticleResponse struct {
	Status int               `json:"status"`
	Data   BookmarkedArticle `json:"data"`
}
