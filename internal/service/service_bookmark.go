package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/models"
)

// bookmarkService is the concrete implementation of BookmarkService.
// Callers address bookmarks by article slug; the article repository
// resolves the slug to an id before the bookmark repository is touched,
// so bookmarks can never point at soft-deleted articles.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	articleRepository  store.ArticleRepository
	logger             *logger.Logger
}

// NewBookmarkService constructs a BookmarkService backed by the given repositories.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, articleRepository store.ArticleRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		articleRepository:  articleRepository,
		logger:             logger,
	}
}

// AddBookmark saves the article identified by slug for the given user.
//
// Returns a wrapped store.ErrArticleNotFound when the slug does not resolve
// and a wrapped store.ErrBookmarkAlreadyExists when the pair already exists.
func (s *bookmarkService) AddBookmark(ctx context.Context, userID int64, articleSlug string) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	article, err := s.articleRepository.FindArticleBySlug(ctx, articleSlug)
	if err != nil {
		log.Err(err).Str("slug", articleSlug).Msg("article search by slug failed")
		return models.Bookmark{}, fmt.Errorf("article search by slug failed: %w", err)
	}

	bookmark, err := s.bookmarkRepository.CreateBookmark(ctx, userID, article.ID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("article_id", article.ID).Msg("bookmark creation ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark creation ended with error: %w", err)
	}

	return bookmark, nil
}

// GetBookmark returns the user's saved copy of the article identified by slug.
//
// Returns a wrapped store.ErrBookmarkNotFound when the user never saved the
// article and a wrapped store.ErrArticleNotFound when the slug does not resolve.
func (s *bookmarkService) GetBookmark(ctx context.Context, userID int64, articleSlug string) (models.BookmarkedArticle, error) {
	log := logger.FromContext(ctx)

	article, err := s.articleRepository.FindArticleBySlug(ctx, articleSlug)
	if err != nil {
		log.Err(err).Str("slug", articleSlug).Msg("article search by slug failed")
		return models.BookmarkedArticle{}, fmt.Errorf("article search by slug failed: %w", err)
	}

	if _, err := s.bookmarkRepository.FindBookmark(ctx, userID, article.ID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("article_id", article.ID).Msg("bookmark lookup failed")
		return models.BookmarkedArticle{}, fmt.Errorf("bookmark lookup failed: %w", err)
	}

	return models.BookmarkedArticle{
		Title:  article.Title,
		Slug:   article.Slug,
		Author: article.Author,
	}, nil
}

// ListBookmarks returns every article the user has saved, newest first.
// Soft-deleted articles drop out of the listing.
func (s *bookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]models.BookmarkedArticle, error) {
	log := logger.FromContext(ctx)

	bookmarks, err := s.bookmarkRepository.ListBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark listing failed")
		return nil, fmt.Errorf("bookmark listing failed: %w", err)
	}

	return bookmarks, nil
}

// RemoveBookmark deletes the user's bookmark for the article identified by slug.
//
// Returns a wrapped ErrNoBookmarkToRemove when no such bookmark exists.
func (s *bookmarkService) RemoveBookmark(ctx context.Context, userID int64, articleSlug string) error {
	log := logger.FromContext(ctx)

	article, err := s.articleRepository.FindArticleBySlug(ctx, articleSlug)
	if err != nil {
		log.Err(err).Str("slug", articleSlug).Msg("article search by slug failed")
		return fmt.Errorf("article search by slug failed: %w", err)
	}

	if err := s.bookmarkRepository.DeleteBookmark(ctx, userID, article.ID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("article_id", article.ID).Msg("bookmark deletion ended with error")
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return fmt.Errorf("bookmark deletion ended with error: %w", ErrNoBookmarkToRemove)
		}
		return fmt.Errorf("bookmark deletion ended with error: %w", err)
	}

	return nil
}
