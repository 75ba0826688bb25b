package stream

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fitadmin/backend/internal/application/media"
)

// StubStream is a placeholder implementation of media.VideoStream used
// in development when no streaming credentials are configured. Videos
// are always reported ready.
type StubStream struct {
	counter atomic.Int64
}

// NewStubStream creates a new StubStream
func NewStubStream() *StubStream {
	return &StubStream{}
}

// Ensure StubStream implements media.VideoStream
var _ media.VideoStream = (*StubStream)(nil)

// CreateDirectUpload returns a deterministic fake upload credential
func (s *StubStream) CreateDirectUpload(ctx context.Context, maxDurationSeconds int) (*media.DirectUpload, error) {
	uid := fmt.Sprintf("stub-video-%d", s.counter.Add(1))
	return &media.DirectUpload{
		UploadURL: "https://stream.example.com/upload/" + uid,
		UID:       uid,
	}, nil
}

// GetVideo reports every video as ready with fake playback URLs
func (s *StubStream) GetVideo(ctx context.Context, uid string) (*media.VideoStatus, error) {
	return &media.VideoStatus{
		Playback: media.Playback{
			HLS:  fmt.Sprintf("https://stream.example.com/%s/manifest/video.m3u8", uid),
			Dash: fmt.Sprintf("https://stream.example.com/%s/manifest/video.mpd", uid),
		},
		Ready: true,
	}, nil
}
