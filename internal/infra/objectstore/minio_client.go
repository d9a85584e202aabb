// Package objectstore implements the ObjectStore domain interface on top of
// an S3-compatible service via the MinIO client.
package objectstore

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"craftapp/config"
	"craftapp/internal/domain/storage"
)

// minioAPI is the narrow slice of *minio.Client the store uses.
// Kept as an interface to enable testing without a live server.
type minioAPI interface {
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// minioClientWrapper adapts *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

var _ storage.ObjectStore = (*Store)(nil)

// Store is the MinIO-backed object store.
type Store struct {
	api    minioAPI
	bucket string
}

// New creates a Store from the assets configuration.
func New(cfg *config.Config) (*Store, error) {
	if cfg.Assets == nil {
		return nil, errors.New("assets configuration is required")
	}

	client, err := minio.New(cfg.Assets.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Assets.AccessKey, cfg.Assets.SecretKey, ""),
		Secure: cfg.Assets.UseSSL,
		Region: cfg.Assets.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create object store client")
	}

	return NewWithAPI(minioClientWrapper{c: client}, cfg.Assets.Bucket), nil
}

// NewWithAPI allows injecting a mockable API (used in tests).
func NewWithAPI(api minioAPI, bucket string) *Store {
	return &Store{api: api, bucket: bucket}
}

// Get fetches the full content of the object at key.
func (s *Store) Get(ctx context.Context, key string) (*storage.Object, error) {
	obj, err := s.api.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(err, key)
	}
	defer obj.Close()

	// The client defers the actual request until the first read, so the
	// missing-key and access-denied cases surface here.
	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, classify(err, key)
	}

	return &storage.Object{Content: content}, nil
}

// Put writes content under key with the supplied metadata.
func (s *Store) Put(ctx context.Context, key string, content []byte, opts storage.PutOptions) error {
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	})
	if err != nil {
		return classify(err, key)
	}

	return nil
}

// BucketExists reports whether the configured bucket is reachable.
func (s *Store) BucketExists(ctx context.Context) (bool, error) {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, errors.Wrap(err, "failed to check bucket existence")
	}

	return exists, nil
}

// Bucket returns the configured bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}

// classify maps the client's error codes onto the domain error-kind enum.
func classify(err error, key string) error {
	kind := storage.KindInternal
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey":
		kind = storage.KindNotFound
	case "AccessDenied":
		kind = storage.KindAccessDenied
	}

	return &storage.Error{Kind: kind, Key: key, Err: err}
}
