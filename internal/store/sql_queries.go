package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/akarpushin/conduit-data/models"
)

const (
	userColumns = `user_id, username, email, bio, image, password_hash, created_at, updated_at`

	createUser = `INSERT INTO "user" (user_id, username, email, bio, image, password_hash)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	// Equality on username/email is case-insensitive through the column
	// collation; no lower() is needed (or wanted) here.
	getUserByID = `SELECT ` + userColumns + `
    FROM "user"
    WHERE user_id = $1;`
	getUserByUsername = `SELECT ` + userColumns + `
    FROM "user"
    WHERE username = $1;`
	getUserByEmail = `SELECT ` + userColumns + `
    FROM "user"
    WHERE email = $1;`

	deleteUser = `DELETE FROM "user" WHERE user_id = $1;`

	followColumns = `following_user_id, followed_user_id, created_at, updated_at`

	createFollow = `INSERT INTO follow (following_user_id, followed_user_id)
    VALUES ($1, $2)
    RETURNING ` + followColumns + `;`

	deleteFollow = `DELETE FROM follow
    WHERE following_user_id = $1 AND followed_user_id = $2;`

	isFollowing = `SELECT EXISTS(
        SELECT 1 FROM follow WHERE following_user_id = $1 AND followed_user_id = $2
    );`

	// Primary-key-prefix scan: the dominant query the key order was chosen for.
	getFollowing = `SELECT ` + followColumns + `
    FROM follow
    WHERE following_user_id = $1
    ORDER BY created_at;`

	// Served by follow_followed_user_id_idx.
	getFollowers = `SELECT ` + followColumns + `
    FROM follow
    WHERE followed_user_id = $1
    ORDER BY created_at;`

	articleColumns = `article_id, user_id, slug, title, description, body, tag_list, created_at, updated_at`

	createArticle = `INSERT INTO article (article_id, user_id, slug, title, description, body, tag_list)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + articleColumns + `;`

	getArticleByID = `SELECT ` + articleColumns + `
    FROM article
    WHERE article_id = $1;`
	getArticleBySlug = `SELECT ` + articleColumns + `
    FROM article
    WHERE slug = $1;`

	deleteArticle = `DELETE FROM article WHERE article_id = $1;`

	// Containment query served by the GIN index on tag_list.
	getArticlesByTag = `SELECT ` + articleColumns + `
    FROM article
    WHERE tag_list @> $1
    ORDER BY created_at DESC;`

	getArticlesByAuthor = `SELECT ` + articleColumns + `
    FROM article
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	// Full scan; no index can serve a distinct-unnest.
	getAllTags = `SELECT DISTINCT unnest(tag_list) AS tag
    FROM article
    ORDER BY tag;`

	favoriteColumns = `article_id, user_id, created_at, updated_at`

	addFavorite = `INSERT INTO article_favorite (article_id, user_id)
    VALUES ($1, $2)
    RETURNING ` + favoriteColumns + `;`

	removeFavorite = `DELETE FROM article_favorite
    WHERE article_id = $1 AND user_id = $2;`

	isFavorited = `SELECT EXISTS(
        SELECT 1 FROM article_favorite WHERE article_id = $1 AND user_id = $2
    );`

	// Derived aggregate: computed from the relation, never a stored counter.
	countFavorites = `SELECT count(*) FROM article_favorite WHERE article_id = $1;`

	commentColumns = `comment_id, article_id, user_id, body, created_at, updated_at`

	createComment = `INSERT INTO article_comment (article_id, user_id, body)
    VALUES ($1, $2, $3)
    RETURNING ` + commentColumns + `;`

	getCommentByID = `SELECT ` + commentColumns + `
    FROM article_comment
    WHERE comment_id = $1;`

	// comment_id is a tie-break only: display order is chronological even
	// when sequence values committed out of order.
	getArticleComments = `SELECT ` + commentColumns + `
    FROM article_comment
    WHERE article_id = $1
    ORDER BY created_at, comment_id;`

	deleteComment = `DELETE FROM article_comment WHERE comment_id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds a partial UPDATE touching only the supplied
// columns. updated_at is not set here: the touch-on-change trigger stamps it,
// and only when something observably changed.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	b := psql.Update(`"user"`)

	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Bio != nil {
		b = b.Set("bio", *update.Bio)
	}
	if update.Image != nil {
		b = b.Set("image", *update.Image)
	}
	if update.PasswordHash != nil {
		b = b.Set("password_hash", *update.PasswordHash)
	}

	return b.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildUpdateArticleQuery builds a partial UPDATE for an article. The slug
// is deliberately not updatable through this path.
func buildUpdateArticleQuery(update models.ArticleUpdate) (string, []any, error) {
	b := psql.Update("article")

	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Body != nil {
		b = b.Set("body", *update.Body)
	}
	if update.TagList != nil {
		b = b.Set("tag_list", pq.Array(update.TagList))
	}

	return b.
		Where(sq.Eq{"article_id": update.ArticleID}).
		Suffix("RETURNING " + articleColumns).
		ToSql()
}
