package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"carelink_backend/internal/logger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// R2Storage implements Storage against Cloudflare R2. R2 speaks the S3
// API, so the AWS SDK is used directly. Every network call goes through
// the retry policy; the SDK's own retries are disabled so the policy is
// the single budget.
type R2Storage struct {
	client  *s3.S3
	bucket  string
	baseURL string
	retry   RetryPolicy
}

// NewR2Storage builds an R2 client. The endpoint is derived from the
// account ID unless overridden.
func NewR2Storage(cfg Config, retry RetryPolicy) (*R2Storage, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.AccountID == "" {
			return nil, fmt.Errorf("either endpoint or account_id is required for Cloudflare R2")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsConfig := &aws.Config{
		Region:           aws.String("auto"),
		Endpoint:         aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
		MaxRetries:       aws.Int(0),
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create R2 session: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.r2.dev", cfg.Bucket)
	}

	return &R2Storage{
		client:  s3.New(sess),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		retry:   retry,
	}, nil
}

// Save uploads a file to R2. The body is buffered so each retry attempt
// re-sends the full content.
func (s *R2Storage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read upload body: %w", err)
	}

	start := time.Now()
	attempts := 0
	err = s.retry.Do(func() error {
		attempts++
		_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType),
		})
		return err
	})
	logger.StorageLog("put", key, attempts, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

// Get retrieves a file from R2.
func (s *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	var body io.ReadCloser
	err := s.retry.Do(func() error {
		result, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
		body = result.Body
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get from R2: %w", err)
	}
	return body, nil
}

// Delete removes a file from R2.
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	start := time.Now()
	attempts := 0
	err := s.retry.Do(func() error {
		attempts++
		_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		return err
	})
	logger.StorageLog("delete", key, attempts, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

// Exists checks if a file exists in R2. A head failure after the retry
// budget is treated as absence, matching the S3 semantics for missing
// keys.
func (s *R2Storage) Exists(ctx context.Context, key string) (bool, error) {
	err := s.retry.Do(func() error {
		_, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		return err
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

// GetURL returns the public URL for the file.
func (s *R2Storage) GetURL(ctx context.Context, key string) (string, error) {
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// GetSignedURL presigns a GET for the file.
func (s *R2Storage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}

// GetSize returns the size of a stored file.
func (s *R2Storage) GetSize(ctx context.Context, key string) (int64, error) {
	var result *s3.HeadObjectOutput
	err := s.retry.Do(func() error {
		out, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get file info: %w", err)
	}
	return aws.Int64Value(result.ContentLength), nil
}
