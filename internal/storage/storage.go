// Package storage defines the interface for object storage operations.
// Objects are written privately; the only read path is a short-lived
// presigned URL minted per request. The MinIO implementation works with any
// S3-compatible provider (MinIO, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// SignedURLExpiry is how long a minted media URL stays valid.
const SignedURLExpiry = 15 * time.Minute

// DeleteResult reports what a Delete call actually did, so the caller can
// decide whether removing the index row is safe.
type DeleteResult int

const (
	// Deleted means the object existed and was removed.
	Deleted DeleteResult = iota
	// AlreadyAbsent means no object existed under the key.
	AlreadyAbsent
	// DeleteFailed means the object may still exist; the error carries the cause.
	DeleteFailed
)

// Storage is the interface for storing and retrieving media objects.
type Storage interface {
	// Store writes the data privately under a fresh opaque key and returns
	// the key. size must be the exact byte count.
	Store(ctx context.Context, reader io.Reader, size int64, contentType, originalName string) (string, error)
	// PresignedURL mints a fresh time-limited GET URL for the key. An empty
	// key yields an empty URL. URLs must never be cached or persisted.
	PresignedURL(ctx context.Context, key string) (string, error)
	// Delete removes the object identified by key.
	Delete(ctx context.Context, key string) (DeleteResult, error)
}
