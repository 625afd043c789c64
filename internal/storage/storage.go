// Package storage stores uploaded application documents. The production
// backend is Cloudflare R2 through the S3-compatible API; a local
// filesystem backend backs development and tests.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the interface for file storage operations.
type Storage interface {
	// Save stores a file under the given key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a stored file
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file is stored under the key
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the size of a stored file in bytes
	GetSize(ctx context.Context, key string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, cloudflare_r2
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for R2
	AccountID  string // R2 account, builds the endpoint
	AccessKey  string // for R2
	SecretKey  string // for R2
	Endpoint   string // overrides the account-derived endpoint
	PublicRead bool   // serve files via public URL
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewR2Storage(cfg, DefaultRetryPolicy())
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
