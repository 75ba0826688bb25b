// Package media implements the upload brokers: short-lived credentials
// for direct image uploads to object storage and direct video uploads to
// the streaming service. The brokers never touch file bytes; callers
// transfer directly against the minted credential.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage mints presigned upload URLs for an S3-compatible bucket.
type ObjectStorage interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	// PublicURL derives the publicly served URL for an uploaded key.
	PublicURL(storageKey string) string
}

// DirectUpload is a one-time direct-upload credential from the video
// streaming service.
type DirectUpload struct {
	UploadURL string `json:"url"`
	UID       string `json:"uid"`
}

// Playback carries the playback manifest URLs of a transcoded video.
type Playback struct {
	HLS  string `json:"hls,omitempty"`
	Dash string `json:"dash,omitempty"`
}

// VideoStatus reports playback URLs and transcoding readiness.
type VideoStatus struct {
	Playback Playback `json:"playback"`
	Ready    bool     `json:"ready"`
}

// VideoStream is the streaming service's upload and status API.
type VideoStream interface {
	CreateDirectUpload(ctx context.Context, maxDurationSeconds int) (*DirectUpload, error)
	GetVideo(ctx context.Context, uid string) (*VideoStatus, error)
}

// ImageUploadCredential is the response of the image upload broker.
type ImageUploadCredential struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadService coordinates both upload brokers.
type UploadService struct {
	storage           ObjectStorage
	stream            VideoStream
	presignExpiration time.Duration
	maxVideoSeconds   int
	logger            *zap.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorage, stream VideoStream, presignExpiration time.Duration, maxVideoSeconds int, logger *zap.Logger) *UploadService {
	if presignExpiration <= 0 {
		presignExpiration = time.Hour
	}
	if maxVideoSeconds <= 0 {
		maxVideoSeconds = 3600
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{
		storage:           storage,
		stream:            stream,
		presignExpiration: presignExpiration,
		maxVideoSeconds:   maxVideoSeconds,
		logger:            logger,
	}
}

// CreateImageUpload mints a presigned PUT credential for a new object
// under folder/. The key is globally unique; the caller uploads directly
// to object storage and serves the file from the returned public URL.
func (s *UploadService) CreateImageUpload(ctx context.Context, contentType, folder string) (*ImageUploadCredential, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Upload folder is required")
	}
	if contentType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Content type is required")
	}

	key := fmt.Sprintf("%s/%s", folder, uuid.New().String())
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, contentType, s.presignExpiration)
	if err != nil {
		s.logger.Error("Failed to generate image upload URL", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return &ImageUploadCredential{
		URL:       url,
		Key:       key,
		PublicURL: s.storage.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}

// CreateVideoUpload requests a one-time direct-upload URL from the
// streaming service.
func (s *UploadService) CreateVideoUpload(ctx context.Context) (*DirectUpload, error) {
	upload, err := s.stream.CreateDirectUpload(ctx, s.maxVideoSeconds)
	if err != nil {
		s.logger.Error("Failed to create video direct upload", zap.Error(err))
		return nil, err
	}
	return upload, nil
}

// VideoStatus queries the streaming service for playback URLs and
// transcoding readiness.
func (s *UploadService) VideoStatus(ctx context.Context, uid string) (*VideoStatus, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Video ID is required")
	}
	status, err := s.stream.GetVideo(ctx, uid)
	if err != nil {
		s.logger.Error("Failed to fetch video status", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return status, nil
}
