// Package post manages uploaded media records and their persistence.
package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Post is one durable record per uploaded media item. MediaKey names the
// object in the object store and must never be serialized to clients; it is
// translated to a presigned URL at the API boundary.
type Post struct {
	ID        int64
	MediaKey  string
	MediaType string
	CreatedAt time.Time
}

// ErrNotFound is returned when a post does not exist.
var ErrNotFound = errors.New("post not found")

// Repository handles all post database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new post and returns the created record. The media key is
// assigned by the storage layer before the row is written, so a row only
// exists once the object write has already succeeded.
func (r *Repository) Create(ctx context.Context, mediaKey, mediaType string, createdAt time.Time) (*Post, error) {
	p := &Post{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO posts (media_key, media_type, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, media_key, media_type, created_at`,
		mediaKey, mediaType, createdAt,
	).Scan(&p.ID, &p.MediaKey, &p.MediaType, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// ListNewestFirst returns all posts ordered by creation time descending.
// Ties on created_at fall back to id descending so the order is stable.
func (r *Repository) ListNewestFirst(ctx context.Context) ([]Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, media_key, media_type, created_at
		 FROM posts
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.MediaKey, &p.MediaType, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetByID fetches a post by its numeric identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	p := &Post{}
	err := r.db.QueryRow(ctx,
		`SELECT id, media_key, media_type, created_at
		 FROM posts WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.MediaKey, &p.MediaType, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return p, nil
}

// Delete removes the post row. It reports ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
