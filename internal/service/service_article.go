// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

const (
	minRating = 1
	maxRating = 5
)

// articleService is the concrete implementation of ArticleService.
// Slugs, descriptions, and read times are derived here so that callers
// only ever supply title, body, tags, and status.
type articleService struct {
	articleRepository store.ArticleRepository
	logger            *logger.Logger
}

// NewArticleService constructs an ArticleService backed by the given repository.
func NewArticleService(articleRepository store.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		logger:            logger,
	}
}

// CreateArticle persists a new article for the author recorded in it.
//
// The slug is derived from the title with a random suffix, the description
// is the leading excerpt of the body, and the read time is estimated from
// the body length. Status is matched case-insensitively and an empty one
// defaults to draft.
//
// Returns ErrInvalidDataProvided if title, body, or author is missing.
func (s *articleService) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	if article.Title == "" || article.Body == "" || article.AuthorID == 0 {
		log.Error().Str("title", article.Title).Int64("author_id", article.AuthorID).Msg("invalid article data provided")
		return models.Article{}, ErrInvalidDataProvided
	}

	slug, err := utils.Slugify(article.Title)
	if err != nil {
		log.Err(err).Str("title", article.Title).Msg("slug generation failed")
		return models.Article{}, fmt.Errorf("slug generation failed: %w", err)
	}

	article.Slug = slug
	article.Description = utils.Description(article.Body)
	article.ReadTime = utils.ReadTime(article.Body)
	article.Status = strings.ToLower(article.Status)
	if article.Status == "" {
		article.Status = models.StatusDraft
	}

	created, err := s.articleRepository.CreateArticle(ctx, article)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("article creation ended with error")
		return models.Article{}, fmt.Errorf("article creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateArticle overwrites the article identified by slug with the supplied
// title, body, and tags, re-deriving the slug, description, and read time.
// Status is not touched here, publishing is a separate concern from editing.
// The previous slug stops resolving once the update lands.
//
// Returns ErrNotArticleAuthor when authorID does not own the article and a
// wrapped store.ErrArticleNotFound when the slug does not resolve.
func (s *articleService) UpdateArticle(ctx context.Context, slug string, authorID int64, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	if article.Title == "" || article.Body == "" {
		log.Error().Str("slug", slug).Msg("invalid article data provided")
		return models.Article{}, ErrInvalidDataProvided
	}

	existing, err := s.articleRepository.FindArticleBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("article search by slug failed")
		return models.Article{}, fmt.Errorf("article search by slug failed: %w", err)
	}

	if existing.AuthorID != authorID {
		log.Error().Str("slug", slug).Int64("author_id", authorID).Msg("update attempt by non-author")
		return models.Article{}, ErrNotArticleAuthor
	}

	newSlug, err := utils.Slugify(article.Title)
	if err != nil {
		log.Err(err).Str("title", article.Title).Msg("slug generation failed")
		return models.Article{}, fmt.Errorf("slug generation failed: %w", err)
	}

	existing.Title = article.Title
	existing.Body = article.Body
	existing.Slug = newSlug
	existing.Description = utils.Description(article.Body)
	existing.ReadTime = utils.ReadTime(article.Body)
	if article.TagList != nil {
		existing.TagList = article.TagList
	}

	if err := s.articleRepository.UpdateArticle(ctx, slug, existing); err != nil {
		log.Err(err).Str("slug", slug).Msg("article update ended with error")
		return models.Article{}, fmt.Errorf("article update ended with error: %w", err)
	}

	return existing, nil
}

// DeleteArticle soft-deletes the article identified by slug. The row stays
// in storage but stops resolving through every read path.
//
// Returns ErrNotArticleAuthor when authorID does not own the article.
func (s *articleService) DeleteArticle(ctx context.Context, slug string, authorID int64) error {
	log := logger.FromContext(ctx)

	existing, err := s.articleRepository.FindArticleBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("article search by slug failed")
		return fmt.Errorf("article search by slug failed: %w", err)
	}

	if existing.AuthorID != authorID {
		log.Error().Str("slug", slug).Int64("author_id", authorID).Msg("delete attempt by non-author")
		return ErrNotArticleAuthor
	}

	if err := s.articleRepository.SoftDeleteArticle(ctx, slug); err != nil {
		log.Err(err).Str("slug", slug).Msg("article deletion ended with error")
		return fmt.Errorf("article deletion ended with error: %w", err)
	}

	return nil
}

// GetArticle fetches a single article by slug together with its derived
// average rating and like count.
func (s *articleService) GetArticle(ctx context.Context, slug string) (models.ArticleView, error) {
	log := logger.FromContext(ctx)

	article, err := s.articleRepository.FindArticleBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("article search by slug failed")
		return models.ArticleView{}, fmt.Errorf("article search by slug failed: %w", err)
	}

	likes, err := s.articleRepository.CountLikes(ctx, article.ID)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("like count failed")
		return models.ArticleView{}, fmt.Errorf("like count failed: %w", err)
	}

	return models.ArticleView{
		Article:       article,
		AverageRating: article.AverageRating(),
		Likes:         likes,
	}, nil
}

// ListByAuthor returns the author's articles filtered by status. An empty
// status defaults to published, so drafts only surface when asked for.
func (s *articleService) ListByAuthor(ctx context.Context, authorID int64, status string, limit, offset uint64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	status = strings.ToLower(status)
	if status == "" {
		status = models.StatusPublished
	}

	articles, err := s.articleRepository.ListArticles(ctx, store.ArticleFilter{
		AuthorID: authorID,
		Status:   status,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Str("status", status).Msg("article listing failed")
		return nil, fmt.Errorf("article listing failed: %w", err)
	}

	return articles, nil
}

// Feed returns published articles across all authors, newest first.
func (s *articleService) Feed(ctx context.Context, limit, offset uint64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	articles, err := s.articleRepository.ListArticles(ctx, store.ArticleFilter{
		Status: models.StatusPublished,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Err(err).Msg("feed listing failed")
		return nil, fmt.Errorf("feed listing failed: %w", err)
	}

	return articles, nil
}

// RateArticle appends one rating to the article's history and returns the
// refreshed article. Ratings are append-only: no caller can retract or
// rewrite an earlier score.
//
// Returns ErrInvalidRating when the score falls outside [1, 5].
func (s *articleService) RateArticle(ctx context.Context, slug string, rating int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	if rating < minRating || rating > maxRating {
		log.Error().Str("slug", slug).Int64("rating", rating).Msg("rating out of range")
		return models.Article{}, ErrInvalidRating
	}

	rated, err := s.articleRepository.AppendRating(ctx, slug, rating)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("rating append failed")
		return models.Article{}, fmt.Errorf("rating append failed: %w", err)
	}

	return rated, nil
}
