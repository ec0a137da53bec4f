package content_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/telsite/pkg/content"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadBucketOutput), args.Error(1)
}

func objectKey(bucket, key string) any {
	return mock.MatchedBy(func(params *s3.GetObjectInput) bool {
		return params.Bucket != nil && *params.Bucket == bucket &&
			params.Key != nil && *params.Key == key
	})
}

func newS3Source(t *testing.T, client *MockS3Client, prefix string) *content.S3Source {
	t.Helper()
	src, err := content.NewS3Source(context.Background(), content.S3Config{
		Bucket: "tel-pages",
		Region: "eu-central-1",
		Prefix: prefix,
	}, content.WithS3Client(client))
	require.NoError(t, err)
	return src
}

func TestNewS3Source_Validation(t *testing.T) {
	t.Parallel()

	_, err := content.NewS3Source(context.Background(), content.S3Config{Region: "eu-central-1"})
	assert.Error(t, err)

	_, err = content.NewS3Source(context.Background(), content.S3Config{Bucket: "tel-pages"})
	assert.Error(t, err)
}

func TestS3Source_Open(t *testing.T) {
	t.Parallel()

	t.Run("reads object below prefix", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, objectKey("tel-pages", "site/de/help.html"), mock.Anything).
			Return(&s3.GetObjectOutput{
				Body:          io.NopCloser(strings.NewReader("<h1>Hilfe</h1>")),
				ContentLength: aws.Int64(14),
			}, nil)

		src := newS3Source(t, client, "/site/")
		data, err := src.Open(context.Background(), "de/help.html")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hilfe</h1>", string(data))
		client.AssertExpectations(t)
	})

	t.Run("no prefix", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, objectKey("tel-pages", "en/home.html"), mock.Anything).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("home"))}, nil)

		src := newS3Source(t, client, "")
		data, err := src.Open(context.Background(), "en/home.html")
		require.NoError(t, err)
		assert.Equal(t, "home", string(data))
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, objectKey("tel-pages", "en/missing.html"), mock.Anything).
			Return(nil, &types.NoSuchKey{})
		client.On("GetObject", mock.Anything, objectKey("tel-pages", "en/gone.html"), mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "NotFound", Message: "not found"})

		src := newS3Source(t, client, "")
		_, err := src.Open(context.Background(), "en/missing.html")
		assert.ErrorIs(t, err, content.ErrNotFound)

		_, err = src.Open(context.Background(), "en/gone.html")
		assert.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("other errors are kept", func(t *testing.T) {
		t.Parallel()
		boom := &smithy.GenericAPIError{Code: "AccessDenied", Message: "access denied"}
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

		src := newS3Source(t, client, "")
		_, err := src.Open(context.Background(), "en/home.html")
		require.Error(t, err)
		assert.NotErrorIs(t, err, content.ErrNotFound)

		var apiErr smithy.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "AccessDenied", apiErr.ErrorCode())
	})

	t.Run("object too large", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(&s3.GetObjectOutput{
				Body:          io.NopCloser(strings.NewReader("x")),
				ContentLength: aws.Int64(content.MaxFileSize + 1),
			}, nil)

		src := newS3Source(t, client, "")
		_, err := src.Open(context.Background(), "en/home.html")
		assert.ErrorIs(t, err, content.ErrTooLarge)
	})

	t.Run("invalid name never reaches the bucket", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)

		src := newS3Source(t, client, "site")
		_, err := src.Open(context.Background(), "../secrets/key.pem")
		assert.ErrorIs(t, err, content.ErrInvalidPath)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestS3Source_Ping(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("HeadBucket", mock.Anything, mock.MatchedBy(func(params *s3.HeadBucketInput) bool {
		return params.Bucket != nil && *params.Bucket == "tel-pages"
	}), mock.Anything).Return(&s3.HeadBucketOutput{}, nil).Once()
	client.On("HeadBucket", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	src := newS3Source(t, client, "")
	assert.NoError(t, src.Ping(context.Background()))
	assert.Error(t, src.Ping(context.Background()))
	client.AssertExpectations(t)
}
