package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/migrations"
)

// Storages aggregates every repository over one shared database connection.
type Storages struct {
	DB *DB

	UserRepository         UserRepository
	ArticleRepository      ArticleRepository
	BookmarkRepository     BookmarkRepository
	SubscriptionRepository SubscriptionRepository
	TokenRepository        TokenRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and wires all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DB:                     db,
		UserRepository:         NewUserRepository(db, log),
		ArticleRepository:      NewArticleRepository(db, log),
		BookmarkRepository:     NewBookmarkRepository(db, log),
		SubscriptionRepository: NewSubscriptionRepository(db, log),
		TokenRepository:        NewTokenRepository(db, log),
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
