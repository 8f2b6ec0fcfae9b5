package service

import (
	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService         AuthService
	ArticleService      ArticleService
	BookmarkService     BookmarkService
	SubscriptionService SubscriptionService
}

// NewServices wires all services over the given storages. mailSender may be
// nil when no mail provider is configured; activation and reset mail are
// then skipped.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, mailSender MailSender, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.TokenRepository, mailSender, cfg.App, logger),
		ArticleService:      NewArticleService(storages.ArticleRepository, logger),
		BookmarkService:     NewBookmarkService(storages.BookmarkRepository, storages.ArticleRepository, logger),
		SubscriptionService: NewSubscriptionService(storages.SubscriptionRepository, storages.ArticleRepository, storages.UserRepository, logger),
	}
}
