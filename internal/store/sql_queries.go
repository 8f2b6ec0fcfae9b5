package store

const (
	userColumns = `user_id, email, username, salt, hash, activated, provider, bio, image, created_at`

	createUser = `INSERT INTO users (email, username, salt, hash, provider)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, username, salt, hash, activated, provider, bio, image, created_at;`

	findUserByEmail = `SELECT user_id, email, username, salt, hash, activated, provider, bio, image, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, username, salt, hash, activated, provider, bio, image, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByUsername = `SELECT user_id, email, username, salt, hash, activated, provider, bio, image, created_at
    FROM users
    WHERE username = $1;`

	findUserByProvider = `SELECT user_id, email, username, salt, hash, activated, provider, bio, image, created_at
    FROM users
    WHERE username = $1 AND provider = $2;`

	activateUser = `UPDATE users
    SET activated = TRUE
    WHERE user_id = $1;`

	updateCredentials = `UPDATE users
    SET salt = $1, hash = $2
    WHERE email = $3;`
)

const (
	articleColumns = `id, author_id, title, body, description, slug, status, tag_list, read_time, ratings, created_at, updated_at`

	createArticle = `INSERT INTO articles (author_id, title, body, description, slug, status, tag_list, read_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7::text[], $8)
    RETURNING id, author_id, title, body, description, slug, status, tag_list, read_time, ratings, created_at, updated_at;`

	// Single-article reads join the owning user so the public author
	// profile travels with the article.
	findArticleBySlug = `SELECT a.id, a.author_id, a.title, a.body, a.description, a.slug, a.status, a.tag_list, a.read_time, a.ratings, a.created_at, a.updated_at, u.username, u.bio, u.image
    FROM articles a
    JOIN users u ON u.user_id = a.author_id
    WHERE a.slug = $1 AND a.deleted = FALSE;`

	findArticleByID = `SELECT a.id, a.author_id, a.title, a.body, a.description, a.slug, a.status, a.tag_list, a.read_time, a.ratings, a.created_at, a.updated_at, u.username, u.bio, u.image
    FROM articles a
    JOIN users u ON u.user_id = a.author_id
    WHERE a.id = $1 AND a.deleted = FALSE;`

	updateArticle = `UPDATE articles
    SET title = $1, body = $2, description = $3, slug = $4, tag_list = $5::text[], read_time = $6, updated_at = NOW()
    WHERE slug = $7 AND deleted = FALSE;`

	softDeleteArticle = `UPDATE articles
    SET deleted = TRUE, updated_at = NOW()
    WHERE slug = $1 AND deleted = FALSE;`

	// appendRating grows the rating history in a single statement so two
	// concurrent ratings never overwrite each other.
	appendRating = `UPDATE articles
    SET ratings = array_append(ratings, $1), updated_at = NOW()
    WHERE slug = $2 AND deleted = FALSE
    RETURNING id, author_id, title, body, description, slug, status, tag_list, read_time, ratings, created_at, updated_at;`

	countLikes = `SELECT COUNT(*)
    FROM likes
    WHERE article_id = $1 AND status = 'liked';`
)

const (
	createBookmark = `INSERT INTO bookmarks (user_id, article_id)
    VALUES ($1, $2)
    RETURNING id, user_id, article_id, created_at;`

	findBookmark = `SELECT id, user_id, article_id, created_at
    FROM bookmarks
    WHERE user_id = $1 AND article_id = $2;`

	listBookmarks = `SELECT a.title, a.slug, u.username, u.image
    FROM bookmarks b
    JOIN articles a ON a.id = b.article_id AND a.deleted = FALSE
    JOIN users u ON u.user_id = a.author_id
    WHERE b.user_id = $1
    ORDER BY b.created_at DESC;`

	deleteBookmark = `DELETE FROM bookmarks
    WHERE user_id = $1 AND article_id = $2;`
)

const (
	// addSubscriber keeps set semantics under concurrency: the record is
	// created on first subscribe and a duplicate subscriber id is a no-op.
	addSubscriber = `INSERT INTO subscriptions (target_kind, target_id, subscriber_ids)
    VALUES ($1, $2, ARRAY[$3]::bigint[])
    ON CONFLICT (target_kind, target_id) DO UPDATE
    SET subscriber_ids = CASE
        WHEN $3 = ANY (subscriptions.subscriber_ids) THEN subscriptions.subscriber_ids
        ELSE array_append(subscriptions.subscriber_ids, $3)
    END;`

	removeSubscriber = `UPDATE subscriptions
    SET subscriber_ids = array_remove(subscriber_ids, $3)
    WHERE target_kind = $1 AND target_id = $2;`
)

const (
	blacklistToken = `INSERT INTO blacklist_tokens (token, expires_at)
    VALUES ($1, $2)
    ON CONFLICT (token) DO NOTHING;`

	isTokenBlacklisted = `SELECT EXISTS (
        SELECT 1 FROM blacklist_tokens WHERE token = $1
    );`

	deleteExpiredTokens = `DELETE FROM blacklist_tokens
    WHERE expires_at < NOW();`
)
