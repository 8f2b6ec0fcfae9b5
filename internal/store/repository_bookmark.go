package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
	"github.com/jackc/pgerrcode"
)

// bookmarkRepository is the PostgreSQL-backed implementation of
// [BookmarkRepository]. The (user_id, article_id) pair carries a unique
// constraint, so duplicate bookmarks are rejected by the database itself.
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBookmark persists a new (user, article) pair.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrBookmarkAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, userID, articleID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	var created models.Bookmark
	row := r.db.QueryRowContext(ctx, createBookmark, userID, articleID)

	if err := row.Scan(&created.ID, &created.UserID, &created.ArticleID, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error: bookmark was not created")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Bookmark{}, ErrBookmarkAlreadyExists
		default:
			return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindBookmark retrieves the bookmark for the given pair, or
// [ErrBookmarkNotFound] when the pair does not exist.
func (r *bookmarkRepository) FindBookmark(ctx context.Context, userID, articleID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	var found models.Bookmark
	row := r.db.QueryRowContext(ctx, findBookmark, userID, articleID)

	if err := row.Scan(&found.ID, &found.UserID, &found.ArticleID, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).Str("func", "*bookmarkRepository.FindBookmark").Msg("error: scanning error")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListBookmarks returns the user's saved articles, newest bookmark first,
// each joined with its author's minimal public profile. Bookmarks pointing
// at soft-deleted articles are filtered out by the join.
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, userID int64) ([]models.BookmarkedArticle, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookmarks, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarked := make([]models.BookmarkedArticle, 0)
	for rows.Next() {
		var item models.BookmarkedArticle
		var username string
		var image sql.NullString

		if err := rows.Scan(&item.Title, &item.Slug, &username, &image); err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		item.Author = &models.Profile{Username: username, Image: image.String}
		bookmarked = append(bookmarked, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarked, nil
}

// DeleteBookmark removes the (user, article) pair. Returns
// [ErrBookmarkNotFound] when no such pair existed.
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, userID, articleID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBookmark, userID, articleID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error: bookmark delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
