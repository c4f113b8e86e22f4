package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/katalvlaran/tspkit/store"
)

// Client is the subset of *s3.Client used by Store.
type Client interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var (
	_ Client      = (*s3.Client)(nil)
	_ store.Store = (*Store)(nil)
)

// Store implements store.Store for a single bucket.
type Store struct {
	client Client
	bucket string
	prefix string
}

// New creates a Store over bucket. rootPrefix is prepended to all keys.
func New(client Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: strings.Trim(rootPrefix, "/")}
}

// Options describes the bucket to use.
type Options struct {
	Bucket string
	Prefix string
	Region string
	// Endpoint overrides the AWS endpoint, e.g. for S3-compatible services.
	Endpoint string
	// PathStyle addresses the bucket in the path instead of the host name.
	PathStyle bool
}

// Dial loads the default AWS configuration and returns a Store for opts.Bucket.
func Dial(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3store: bucket is required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})

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

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError(name, err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// Put uploads data under name, replacing any previous object.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", name, err)
	}

	return nil
}

// List returns the keys under prefix, relative to the store prefix, walking
// every result page.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	full := s.prefix
	if prefix != "" {
		full = path.Join(s.prefix, prefix)
	}
	if s.prefix != "" && prefix == "" {
		full += "/"
	}

	var (
		keys      []string
		paginator = s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
			Bucket: aws.String(s.bucket),
			Prefix: aws.String(full),
		})
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			rel := aws.ToString(obj.Key)
			if s.prefix != "" {
				rel = strings.TrimPrefix(strings.TrimPrefix(rel, s.prefix), "/")
			}
			keys = append(keys, rel)
		}
	}

	sort.Strings(keys)
	return keys, nil
}

// mapError translates missing-object errors into store.ErrNotFound.
func mapError(name string, err error) error {
	var (
		nsk *types.NoSuchKey
		nf  *types.NotFound
	)
	if errors.As(err, &nsk) || errors.As(err, &nf) {
		return fmt.Errorf("%s: %w", name, store.ErrNotFound)
	}

	return fmt.Errorf("failed to get %s: %w", name, err)
}
