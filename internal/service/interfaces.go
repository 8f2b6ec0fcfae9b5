package service

import (
	"context"

	"github.com/MKhiriev/author-haven/models"
)

// AuthService covers the account lifecycle: registration (local and
// social), login, activation, password reset, and JWT issuance/parsing.
type AuthService interface {
	Register(ctx context.Context, user models.User, password string) (models.User, error)
	RegisterSocial(ctx context.Context, profile models.SocialProfile) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Activate(ctx context.Context, userID int64) (models.User, error)
	Logout(ctx context.Context, tokenString string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ArticleService covers article authoring, retrieval, and ratings.
// Write operations verify that the acting user owns the article.
type ArticleService interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	UpdateArticle(ctx context.Context, slug string, authorID int64, article models.Article) (models.Article, error)
	DeleteArticle(ctx context.Context, slug string, authorID int64) error

	GetArticle(ctx context.Context, slug string) (models.ArticleView, error)
	ListByAuthor(ctx context.Context, authorID int64, status string, limit, offset uint64) ([]models.Article, error)
	Feed(ctx context.Context, limit, offset uint64) ([]models.Article, error)

	RateArticle(ctx context.Context, slug string, rating int64) (models.Article, error)
}

// BookmarkService covers per-user saved articles, addressed by article slug.
type BookmarkService interface {
	AddBookmark(ctx context.Context, userID int64, articleSlug string) (models.Bookmark, error)
	GetBookmark(ctx context.Context, userID int64, articleSlug string) (models.BookmarkedArticle, error)
	ListBookmarks(ctx context.Context, userID int64) ([]models.BookmarkedArticle, error)
	RemoveBookmark(ctx context.Context, userID int64, articleSlug string) error
}

// SubscriptionService toggles a user's membership in a subscriber set.
// The target string resolves to an article (by slug) first, then to an
// author (by username).
type SubscriptionService interface {
	Subscribe(ctx context.Context, userID int64, target string) (models.Subscription, error)
	Unsubscribe(ctx context.Context, userID int64, target string) (models.Subscription, error)
}

// MailSender delivers transactional mail. Implemented by the adapter
// package; kept here so services depend on behavior, not transport.
type MailSender interface {
	SendActivationMail(ctx context.Context, recipient, activationLink string) error
	SendPasswordResetMail(ctx context.Context, recipient, resetLink string) error
}
