package store

import (
	"context"

	"github.com/MKhiriev/author-haven/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByProvider(ctx context.Context, username, provider string) (models.User, error)
	ActivateUser(ctx context.Context, userID int64) error
	UpdateCredentials(ctx context.Context, email, salt, hash string) error
}

// ArticleRepository is the data-access contract for articles, their rating
// history, and like counts. Soft-deleted articles are invisible to every
// method of this interface.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	FindArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	FindArticleByID(ctx context.Context, articleID int64) (models.Article, error)
	UpdateArticle(ctx context.Context, oldSlug string, article models.Article) error
	SoftDeleteArticle(ctx context.Context, slug string) error
	ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, error)
	AppendRating(ctx context.Context, slug string, rating int64) (models.Article, error)
	CountLikes(ctx context.Context, articleID int64) (int, error)
}

// ArticleFilter narrows ListArticles results. A zero AuthorID means
// "any author"; Status is required. Limit <= 0 disables the limit.
type ArticleFilter struct {
	AuthorID int64
	Status   string
	Limit    uint64
	Offset   uint64
}

// BookmarkRepository is the data-access contract for saved-article pairs.
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, userID, articleID int64) (models.Bookmark, error)
	FindBookmark(ctx context.Context, userID, articleID int64) (models.Bookmark, error)
	ListBookmarks(ctx context.Context, userID int64) ([]models.BookmarkedArticle, error)
	DeleteBookmark(ctx context.Context, userID, articleID int64) error
}

// SubscriptionRepository is the data-access contract for subscriber sets
// keyed by a discriminated (target kind, target id) pair.
type SubscriptionRepository interface {
	FindSubscription(ctx context.Context, targetKind string, targetID int64) (models.Subscription, error)
	AddSubscriber(ctx context.Context, targetKind string, targetID, userID int64) error
	RemoveSubscriber(ctx context.Context, targetKind string, targetID, userID int64) error
}

// TokenRepository is the data-access contract for the session revocation set.
type TokenRepository interface {
	BlacklistToken(ctx context.Context, token models.BlacklistToken) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
