package download_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/odash/pkg/download"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func newS3Sink(t *testing.T, client download.S3Client, cfg download.S3Config) *download.S3Sink {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "reports"
	}
	if cfg.Region == "" {
		cfg.Region = "eu-west-1"
	}
	sink, err := download.NewS3Sink(context.Background(), cfg, download.WithS3Client(client))
	require.NoError(t, err)
	return sink
}

func TestNewS3Sink_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := download.NewS3Sink(context.Background(), download.S3Config{Region: "eu-west-1"})
	assert.ErrorIs(t, err, download.ErrInvalidConfig)

	_, err = download.NewS3Sink(context.Background(), download.S3Config{Bucket: "b"})
	assert.ErrorIs(t, err, download.ErrInvalidConfig)
}

func TestS3Sink_Put(t *testing.T) {
	t.Parallel()

	t.Run("uploads with prefix", func(t *testing.T) {
		t.Parallel()
		client := new(mockS3Client)
		client.On("PutObject",
			mock.Anything,
			mock.MatchedBy(func(in *s3.PutObjectInput) bool {
				return *in.Bucket == "reports" &&
					*in.Key == "monthly/report.pdf" &&
					*in.ContentType == "application/pdf" &&
					*in.ContentLength == 4 &&
					*in.ContentDisposition == `attachment; filename="report.pdf"`
			}),
			mock.Anything,
		).Return(&s3.PutObjectOutput{}, nil)

		sink := newS3Sink(t, client, download.S3Config{Prefix: "/monthly/"})
		loc, err := sink.Put(context.Background(), download.Object{
			Name:        "report.pdf",
			ContentType: "application/pdf",
			Size:        4,
			Body:        strings.NewReader("%PDF"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://reports.s3.eu-west-1.amazonaws.com/monthly/report.pdf", loc)
		client.AssertExpectations(t)
	})

	t.Run("unknown size and content type", func(t *testing.T) {
		t.Parallel()
		client := new(mockS3Client)
		client.On("PutObject",
			mock.Anything,
			mock.MatchedBy(func(in *s3.PutObjectInput) bool {
				return in.ContentLength == nil && *in.ContentType == "application/octet-stream"
			}),
			mock.Anything,
		).Return(&s3.PutObjectOutput{}, nil)

		sink := newS3Sink(t, client, download.S3Config{Endpoint: "http://minio:9000/", ForcePathStyle: true})
		loc, err := sink.Put(context.Background(), download.Object{Name: "a.pdf", Size: -1, Body: strings.NewReader("x")})
		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/reports/a.pdf", loc)
		client.AssertExpectations(t)
	})

	t.Run("invalid name skips upload", func(t *testing.T) {
		t.Parallel()
		client := new(mockS3Client)
		sink := newS3Sink(t, client, download.S3Config{})
		_, err := sink.Put(context.Background(), download.Object{Name: "", Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, download.ErrInvalidFilename)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})

	errorCases := []struct {
		code string
		want error
	}{
		{code: "AccessDenied", want: download.ErrAccessDenied},
		{code: "NoSuchBucket", want: download.ErrBucketNotFound},
		{code: "SlowDown", want: download.ErrServiceUnavailable},
		{code: "InternalError", want: download.ErrWriteFailed},
	}
	for _, tc := range errorCases {
		t.Run("classifies "+tc.code, func(t *testing.T) {
			t.Parallel()
			client := new(mockS3Client)
			client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, &smithy.GenericAPIError{Code: tc.code, Message: "test"})

			sink := newS3Sink(t, client, download.S3Config{})
			_, err := sink.Put(context.Background(), download.Object{Name: "a.pdf", Body: strings.NewReader("x")})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("context errors pass through", func(t *testing.T) {
		t.Parallel()
		client := new(mockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, context.Canceled)

		sink := newS3Sink(t, client, download.S3Config{})
		_, err := sink.Put(context.Background(), download.Object{Name: "a.pdf", Body: strings.NewReader("x")})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
