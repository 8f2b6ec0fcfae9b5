package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// articleRepository is the PostgreSQL-backed implementation of
// [ArticleRepository]. Fixed-shape statements live in sql_queries.go; the
// listing query is assembled with squirrel because its filter set varies.
//
// Every statement carries the `deleted = FALSE` guard, so soft-deleted
// rows are unreachable from this type even though they stay in the table.
type articleRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateArticle persists a new article and returns the fully populated
// [models.Article] with server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createArticle,
		article.AuthorID, article.Title, article.Body, article.Description,
		article.Slug, article.Status, pq.Array(article.TagList), article.ReadTime)

	var created models.Article
	if err := scanArticle(row, &created); err != nil {
		log.Err(err).Str("func", "*articleRepository.CreateArticle").Msg("error: article was not created")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindArticleBySlug retrieves a non-deleted article by its slug.
//
// Error handling:
//   - No matching row (unknown or soft-deleted slug) → [ErrArticleNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *articleRepository) FindArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return r.findArticle(ctx, findArticleBySlug, slug)
}

// FindArticleByID retrieves a non-deleted article by its internal id.
func (r *articleRepository) FindArticleByID(ctx context.Context, articleID int64) (models.Article, error) {
	return r.findArticle(ctx, findArticleByID, articleID)
}

// UpdateArticle overwrites the derived and author-supplied fields of the
// article currently reachable at oldSlug. Returns [ErrArticleNotFound] when
// no non-deleted row matched.
func (r *articleRepository) UpdateArticle(ctx context.Context, oldSlug string, article models.Article) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateArticle,
		article.Title, article.Body, article.Description, article.Slug,
		pq.Array(article.TagList), article.ReadTime, oldSlug)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.UpdateArticle").Msg("error: article update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// SoftDeleteArticle flips the deleted flag of the article at slug. The row
// is never removed; it only becomes invisible to reads. A second delete of
// the same slug finds no non-deleted row and reports [ErrArticleNotFound].
func (r *articleRepository) SoftDeleteArticle(ctx context.Context, slug string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteArticle, slug)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.SoftDeleteArticle").Msg("error: soft delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// ListArticles returns non-deleted articles matching the filter, newest
// first. The query is built dynamically: the author predicate is present
// only when the filter names an author, and limit/offset only when set.
func (r *articleRepository) ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	builder := r.sb.
		Select("a.id", "a.author_id", "a.title", "a.body", "a.description", "a.slug", "a.status",
			"a.tag_list", "a.read_time", "a.ratings", "a.created_at", "a.updated_at",
			"u.username", "u.bio", "u.image").
		From("articles a").
		Join("users u ON u.user_id = a.author_id").
		Where(squirrel.Eq{"a.status": filter.Status, "a.deleted": false}).
		OrderBy("a.created_at DESC")

	if filter.AuthorID != 0 {
		builder = builder.Where(squirrel.Eq{"a.author_id": filter.AuthorID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var article models.Article
		if err := scanAuthoredArticleRow(rows, &article); err != nil {
			log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return articles, nil
}

// AppendRating appends one rating to the article's history with a single
// array_append UPDATE, so two concurrent ratings both land (no
// read-modify-write window). Returns the updated article including the
// grown history, or [ErrArticleNotFound] for an unknown slug.
func (r *articleRepository) AppendRating(ctx context.Context, slug string, rating int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, appendRating, rating, slug)

	var updated models.Article
	if err := scanArticle(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrArticleNotFound
		}
		log.Err(err).Str("func", "*articleRepository.AppendRating").Msg("error: rating append failed")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// CountLikes returns the number of "liked" reactions on the article.
func (r *articleRepository) CountLikes(ctx context.Context, articleID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countLikes, articleID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*articleRepository.CountLikes").Msg("error: counting likes failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *articleRepository) findArticle(ctx context.Context, query string, arg any) (models.Article, error) {
	log := logger.FromContext(ctx)

	var found models.Article
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := scanAuthoredArticleRow(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrArticleNotFound
		}
		log.Err(err).Str("func", "*articleRepository.findArticle").Msg("error: scanning error")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// rowScanner covers *sql.Row and *sql.Rows so one scan helper serves both.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle reads the bare article projection returned by INSERT/UPDATE
// RETURNING clauses. Those statements cannot join users, so Author stays nil.
func scanArticle(row *sql.Row, article *models.Article) error {
	return scanArticleRow(row, article)
}

func scanArticleRow(row rowScanner, article *models.Article) error {
	return row.Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Body,
		&article.Description, &article.Slug, &article.Status,
		pq.Array(&article.TagList), &article.ReadTime, pq.Array(&article.Ratings),
		&article.CreatedAt, &article.UpdatedAt,
	)
}

// scanAuthoredArticleRow reads the joined projection of the SELECT paths:
// the article columns followed by the owner's username, bio, and image.
func scanAuthoredArticleRow(row rowScanner, article *models.Article) error {
	var username string
	var bio, image sql.NullString

	if err := row.Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Body,
		&article.Description, &article.Slug, &article.Status,
		pq.Array(&article.TagList), &article.ReadTime, pq.Array(&article.Ratings),
		&article.CreatedAt, &article.UpdatedAt,
		&username, &bio, &image,
	); err != nil {
		return err
	}

	article.Author = &models.Profile{
		Username: username,
		Bio:      bio.String,
		Image:    image.String,
	}

	return nil
}
