package s3store_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/store"
	"github.com/dmitrymomot/payloadkit/pkg/store/s3store"
)

// MockS3Client is a mock implementation of the s3store.Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadBucketOutput), args.Error(1)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := s3store.New(&MockS3Client{}, "bucket", "p", "")
	assert.ErrorIs(t, err, store.ErrEmptyResource)

	_, err = s3store.New(&MockS3Client{}, "", "p", "teams")
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)

	s, err := s3store.New(&MockS3Client{}, "bucket", "payloadkit", "teams")
	require.NoError(t, err)
	assert.Equal(t, "payloadkit/teams/abc.json", s.Key("abc"))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := s3store.NewClient(context.Background(), s3store.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)

	client, err := s3store.NewClient(context.Background(), s3store.Config{
		Bucket:         "bucket",
		Region:         "us-east-1",
		AccessKeyID:    "key",
		SecretKey:      "secret",
		Endpoint:       "http://localhost:9000",
		ForcePathStyle: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	var input *s3.PutObjectInput
	client.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput"), mock.Anything).
		Run(func(args mock.Arguments) { input = args.Get(1).(*s3.PutObjectInput) }).
		Return(&s3.PutObjectOutput{}, nil).Once()

	s, err := s3store.New(client, "bucket", "payloadkit", "teams")
	require.NoError(t, err)

	obj, err := s.Create(context.Background(), map[string]any{"name": "Eng"})
	require.NoError(t, err)
	client.AssertExpectations(t)

	doc := obj.(*store.Document)
	assert.Equal(t, store.StateSaved, doc.State)
	assert.Equal(t, "bucket", aws.ToString(input.Bucket))
	assert.Equal(t, "payloadkit/teams/"+doc.ID+".json", aws.ToString(input.Key))
	assert.Equal(t, "application/json", aws.ToString(input.ContentType))
	assert.Equal(t, "*", aws.ToString(input.IfNoneMatch))

	body, err := io.ReadAll(input.Body)
	require.NoError(t, err)
	var rec store.Record
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, doc.ID, rec.ID)
	assert.Equal(t, map[string]any{"name": "Eng"}, rec.Data)
}

func TestStore_CreateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no such bucket", err: &types.NoSuchBucket{}, want: s3store.ErrBucketNotFound},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: s3store.ErrAccessDenied},
		{name: "throttled", err: &smithy.GenericAPIError{Code: "SlowDown"}, want: s3store.ErrServiceUnavailable},
		{name: "key exists", err: &smithy.GenericAPIError{Code: "PreconditionFailed"}, want: s3store.ErrDuplicateDocument},
		{name: "other api error", err: &smithy.GenericAPIError{Code: "InternalError"}, want: s3store.ErrFailedToPutDocument},
		{name: "network", err: errors.New("connection reset"), want: s3store.ErrFailedToPutDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &MockS3Client{}
			client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			s, err := s3store.New(client, "bucket", "", "teams")
			require.NoError(t, err)

			_, err = s.Create(context.Background(), map[string]any{})
			assert.ErrorIs(t, err, s3store.ErrFailedToPutDocument)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := &MockS3Client{}
	ok.On("HeadBucket", mock.Anything, mock.Anything, mock.Anything).Return(&s3.HeadBucketOutput{}, nil)
	assert.NoError(t, s3store.Healthcheck(ok, "bucket")(context.Background()))

	missing := &MockS3Client{}
	missing.On("HeadBucket", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NotFound{})
	err := s3store.Healthcheck(missing, "bucket")(context.Background())
	assert.ErrorIs(t, err, s3store.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, s3store.ErrBucketNotFound)
}
