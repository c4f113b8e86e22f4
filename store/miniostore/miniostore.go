package miniostore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/katalvlaran/tspkit/store"
)

// Store implements store.Store for a single bucket.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ store.Store = (*Store)(nil)

// New creates a Store over bucket. rootPrefix is prepended to all keys.
func New(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: rootPrefix}
}

// Options describes how to reach the object store. Credentials are read from
// the named environment variables so they never appear in config files.
type Options struct {
	Endpoint     string
	Bucket       string
	Prefix       string
	AccessKeyEnv string
	SecretKeyEnv string
	Secure       bool
}

// Dial builds a MinIO client from opts and makes sure the bucket exists.
func Dial(ctx context.Context, opts Options) (*Store, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, errors.New("miniostore: endpoint and bucket are required")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(opts.AccessKeyEnv), os.Getenv(opts.SecretKeyEnv), ""),
		Secure: opts.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
	}

	return New(client, opts.Bucket, opts.Prefix), nil
}

func (s *Store) key(name string) (string, error) {
	k, err := store.CleanKey(name)
	if err != nil {
		return "", err
	}

	return path.Join(s.prefix, k), nil
}

// Get downloads the object stored under name.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapError(err)
	}

	return data, nil
}

// Put uploads data under name.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})

	return err
}

// List returns all object names with the given prefix, relative to the store
// root.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.prefix + prefix
	if s.prefix != "" && !strings.HasSuffix(s.prefix, "/") {
		fullPrefix = s.prefix + "/" + prefix
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		name := strings.TrimPrefix(obj.Key, s.prefix)
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// mapError translates missing-object responses into store.ErrNotFound.
// GetObject is lazy, so the error may surface on the first read.
func mapError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
		return fmt.Errorf("%s: %w", resp.Key, store.ErrNotFound)
	}

	return err
}
