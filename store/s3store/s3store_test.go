package s3store_test

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/store/s3store"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.ListObjectsV2Output)
	return out, args.Error(1)
}

func TestStore_Get(t *testing.T) {
	client := new(mockClient)
	s := s3store.New(client, "bench", "runs/")

	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == "bench" && *in.Key == "runs/inputs/atlanta.tsp"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("NAME : Atlanta"))}, nil).Once()

	data, err := s.Get(context.Background(), "inputs/atlanta.tsp")
	require.NoError(t, err)
	require.Equal(t, "NAME : Atlanta", string(data))

	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Key == "runs/inputs/absent.tsp"
	})).Return(nil, &types.NoSuchKey{}).Once()

	_, err = s.Get(context.Background(), "inputs/absent.tsp")
	require.ErrorIs(t, err, store.ErrNotFound)

	client.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	_, err = s.Get(context.Background(), "inputs/other.tsp")
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrNotFound)

	client.AssertExpectations(t)
}

func TestStore_Put(t *testing.T) {
	client := new(mockClient)
	s := s3store.New(client, "bench", "")

	var body []byte
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Key == "LS/atlanta_LS_30_7.sol" && *in.ContentLength == 5
	})).Run(func(args mock.Arguments) {
		body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	require.NoError(t, s.Put(context.Background(), "LS/atlanta_LS_30_7.sol", []byte("hello")))
	require.Equal(t, "hello", string(body))
	client.AssertExpectations(t)
}

func TestStore_InvalidKey(t *testing.T) {
	client := new(mockClient)
	s := s3store.New(client, "bench", "runs")

	_, err := s.Get(context.Background(), "../secret")
	require.ErrorIs(t, err, store.ErrInvalidKey)
	require.ErrorIs(t, s.Put(context.Background(), "", nil), store.ErrInvalidKey)
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything)
}

func TestStore_ListPages(t *testing.T) {
	client := new(mockClient)
	s := s3store.New(client, "bench", "runs")

	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return in.ContinuationToken == nil && *in.Prefix == "runs/"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("token"),
		Contents:              []types.Object{{Key: aws.String("runs/results.csv")}},
	}, nil).Once()
	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return in.ContinuationToken != nil && *in.ContinuationToken == "token"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated: aws.Bool(false),
		Contents:    []types.Object{{Key: aws.String("runs/BF/atlanta_BF_30.sol")}},
	}, nil).Once()

	keys, err := s.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"BF/atlanta_BF_30.sol", "results.csv"}, keys)
	client.AssertExpectations(t)
}

func TestDial_RequiresBucket(t *testing.T) {
	_, err := s3store.Dial(context.Background(), s3store.Options{Region: "us-east-1"})
	require.Error(t, err)
}

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("TSP_S3_BUCKET")
	if bucket == "" {
		t.Skip("TSP_S3_BUCKET not set")
	}
	ctx := context.Background()
	s, err := s3store.Dial(ctx, s3store.Options{
		Bucket:    bucket,
		Prefix:    "tspkit-test-" + time.Now().Format("20060102150405.000000000"),
		Endpoint:  os.Getenv("TSP_S3_ENDPOINT"),
		PathStyle: os.Getenv("TSP_S3_ENDPOINT") != "",
	})
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "a/b.sol", []byte("Best Distance: 1.00")))
	data, err := s.Get(ctx, "a/b.sol")
	require.NoError(t, err)
	require.Equal(t, "Best Distance: 1.00", string(data))

	keys, err := s.List(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a/b.sol"}, keys)
}
