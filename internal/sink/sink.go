package sink

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/imamik/machinegen/internal/platform/s3"
)

const (
	s3Scheme        = "s3"
	yamlContentType = "application/yaml"
	fileMode        = 0644
)

// Sink receives an encoded manifest exactly once.
type Sink interface {
	Write(ctx context.Context, data []byte) error
	Target() string
}

// S3Options configure access to S3-compatible storage.
type S3Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	// PathStyle addresses buckets as endpoint/bucket.
	PathStyle bool
}

// objectStore is the part of the S3 client a sink needs.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, key, contentType string, data []byte) error
	GetObject(ctx context.Context, bucketName, key string) ([]byte, error)
}

// newObjectStore is replaceable in tests.
var newObjectStore = func(opts S3Options) (objectStore, error) {
	return s3.NewClient(opts.Endpoint, opts.Region, opts.AccessKey, opts.SecretKey, clientOptions(opts)...)
}

func clientOptions(opts S3Options) []s3.ClientOption {
	var clientOpts []s3.ClientOption
	if opts.PathStyle {
		clientOpts = append(clientOpts, s3.WithPathStyle())
	}
	return clientOpts
}

// IsS3 reports whether target is an s3:// URL.
func IsS3(target string) bool {
	return strings.HasPrefix(target, s3Scheme+"://")
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(target string) (string, string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL %q: %w", target, err)
	}
	if u.Scheme != s3Scheme {
		return "", "", fmt.Errorf("invalid S3 URL %q: scheme must be s3", target)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("invalid S3 URL %q: expected s3://bucket/key", target)
	}
	return u.Host, key, nil
}

// Open returns the sink for target. Nothing is written or created until
// Write is called.
func Open(target string, opts S3Options) (Sink, error) {
	if target == "" {
		return nil, fmt.Errorf("empty output target")
	}
	if !IsS3(target) {
		return &FileSink{Path: target}, nil
	}

	bucket, key, err := ParseS3URL(target)
	if err != nil {
		return nil, err
	}
	store, err := newObjectStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &S3Sink{Bucket: bucket, Key: key, store: store}, nil
}

// Read returns the content of target, a file path or s3:// URL.
func Read(ctx context.Context, target string, opts S3Options) ([]byte, error) {
	if !IsS3(target) {
		// #nosec G304
		data, err := os.ReadFile(target)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", target, err)
		}
		return data, nil
	}

	bucket, key, err := ParseS3URL(target)
	if err != nil {
		return nil, err
	}
	store, err := newObjectStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	data, err := store.GetObject(ctx, bucket, key)
	if s3.IsNotFound(err) {
		return nil, &NotFoundError{Target: target, Err: err}
	}
	return data, err
}

// FileSink writes to a local file, replacing any existing content.
type FileSink struct {
	Path string
}

// Write implements Sink.
func (s *FileSink) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return &WriteError{Target: s.Path, Err: err}
	}
	if err := os.WriteFile(s.Path, data, fileMode); err != nil {
		return &WriteError{Target: s.Path, Err: err}
	}
	return nil
}

// Target implements Sink.
func (s *FileSink) Target() string {
	return s.Path
}

// S3Sink uploads to a single object.
type S3Sink struct {
	Bucket string
	Key    string
	store  objectStore
}

// Write implements Sink.
func (s *S3Sink) Write(ctx context.Context, data []byte) error {
	if err := s.store.PutObject(ctx, s.Bucket, s.Key, yamlContentType, data); err != nil {
		return &WriteError{Target: s.Target(), Err: err}
	}
	return nil
}

// Target implements Sink.
func (s *S3Sink) Target() string {
	return s3Scheme + "://" + s.Bucket + "/" + s.Key
}
