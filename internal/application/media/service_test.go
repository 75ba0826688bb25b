package media

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

// MockVideoStream is a mock implementation of VideoStream
type MockVideoStream struct {
	mock.Mock
}

func (m *MockVideoStream) CreateDirectUpload(ctx context.Context, maxDurationSeconds int) (*DirectUpload, error) {
	args := m.Called(ctx, maxDurationSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DirectUpload), args.Error(1)
}

func (m *MockVideoStream) GetVideo(ctx context.Context, uid string) (*VideoStatus, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VideoStatus), args.Error(1)
}

func TestUploadService_CreateImageUpload(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 3600, zap.NewNop())

	expiresAt := time.Now().Add(time.Hour)
	storage.On("GenerateUploadURL", mock.Anything, mock.AnythingOfType("string"), "image/png", time.Hour).
		Return("https://bucket.example.com/presigned", expiresAt, nil)
	storage.On("PublicURL", mock.AnythingOfType("string")).Return("https://cdn.example.com/public")

	credential, err := service.CreateImageUpload(context.Background(), "image/png", "thumbnails")

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/presigned", credential.URL)
	assert.Equal(t, "https://cdn.example.com/public", credential.PublicURL)
	assert.Equal(t, expiresAt, credential.ExpiresAt)

	// key is folder-scoped and globally unique
	assert.True(t, strings.HasPrefix(credential.Key, "thumbnails/"))
	assert.Len(t, strings.TrimPrefix(credential.Key, "thumbnails/"), 36)
}

func TestUploadService_CreateImageUpload_TrimsFolder(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 3600, zap.NewNop())

	storage.On("GenerateUploadURL", mock.Anything, mock.AnythingOfType("string"), "image/jpeg", time.Hour).
		Return("url", time.Now(), nil)
	storage.On("PublicURL", mock.AnythingOfType("string")).Return("public")

	credential, err := service.CreateImageUpload(context.Background(), "image/jpeg", " /exercises/ ")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(credential.Key, "exercises/"))
}

func TestUploadService_CreateImageUpload_MissingFolder(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 3600, zap.NewNop())

	_, err := service.CreateImageUpload(context.Background(), "image/png", "  ")

	assert.Error(t, err)
	storage.AssertNotCalled(t, "GenerateUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_CreateImageUpload_MissingContentType(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 3600, zap.NewNop())

	_, err := service.CreateImageUpload(context.Background(), "", "thumbnails")

	assert.Error(t, err)
}

func TestUploadService_CreateVideoUpload_UsesConfiguredMaxDuration(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 1800, zap.NewNop())

	stream.On("CreateDirectUpload", mock.Anything, 1800).Return(&DirectUpload{
		UploadURL: "https://upload.example.com/one-time",
		UID:       "vid-1",
	}, nil)

	upload, err := service.CreateVideoUpload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "vid-1", upload.UID)
	stream.AssertExpectations(t)
}

func TestUploadService_VideoStatus_RequiresUID(t *testing.T) {
	storage := new(MockObjectStorage)
	stream := new(MockVideoStream)
	service := NewUploadService(storage, stream, time.Hour, 3600, zap.NewNop())

	_, err := service.VideoStatus(context.Background(), " ")

	assert.Error(t, err)
	stream.AssertNotCalled(t, "GetVideo", mock.Anything, mock.Anything)
}
