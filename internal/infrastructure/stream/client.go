// Package stream implements the video streaming service client used by
// the video upload broker. The API follows the Cloudflare Stream shape:
// direct-upload credentials are minted server-side and the browser
// uploads straight to the returned URL.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fitadmin/backend/internal/application/media"
	"github.com/fitadmin/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure Client implements media.VideoStream
var _ media.VideoStream = (*Client)(nil)

// Client talks to the streaming service's account-scoped REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accountID  string
	apiToken   string
	logger     *zap.Logger
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new streaming service client from configuration.
func NewClient(cfg *config.StreamConfig, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("stream configuration is required")
	}
	if cfg.AccountID == "" {
		return nil, errors.New("stream account ID is required")
	}
	if cfg.APIToken == "" {
		return nil, errors.New("stream API token is required")
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		accountID:  cfg.AccountID,
		apiToken:   cfg.APIToken,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiEnvelope is the standard response wrapper of the streaming API.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Errors  []apiError      `json:"errors"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type directUploadResult struct {
	UploadURL string `json:"uploadURL"`
	UID       string `json:"uid"`
}

type videoResult struct {
	UID      string `json:"uid"`
	Playback struct {
		HLS  string `json:"hls"`
		Dash string `json:"dash"`
	} `json:"playback"`
	ReadyToStream bool `json:"readyToStream"`
}

// CreateDirectUpload requests a one-time direct-upload URL. The credential
// accepts a single upload of at most maxDurationSeconds of video.
func (c *Client) CreateDirectUpload(ctx context.Context, maxDurationSeconds int) (*media.DirectUpload, error) {
	payload := map[string]any{
		"maxDurationSeconds": maxDurationSeconds,
	}

	var result directUploadResult
	url := fmt.Sprintf("%s/accounts/%s/stream/direct_upload", c.baseURL, c.accountID)
	if err := c.do(ctx, http.MethodPost, url, payload, &result); err != nil {
		return nil, err
	}
	if result.UploadURL == "" {
		return nil, errors.New("stream API returned no upload URL")
	}

	return &media.DirectUpload{
		UploadURL: result.UploadURL,
		UID:       result.UID,
	}, nil
}

// GetVideo queries a video's playback URLs and transcoding readiness.
func (c *Client) GetVideo(ctx context.Context, uid string) (*media.VideoStatus, error) {
	var result videoResult
	url := fmt.Sprintf("%s/accounts/%s/stream/%s", c.baseURL, c.accountID, uid)
	if err := c.do(ctx, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}

	return &media.VideoStatus{
		Playback: media.Playback{
			HLS:  result.Playback.HLS,
			Dash: result.Playback.Dash,
		},
		Ready: result.ReadyToStream,
	}, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stream API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Stream API returned error status",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("stream API error: %s", resp.Status)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode stream API response: %w", err)
	}
	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("stream API error %d: %s", envelope.Errors[0].Code, envelope.Errors[0].Message)
		}
		return errors.New("stream API reported failure")
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode stream API result: %w", err)
		}
	}
	return nil
}
