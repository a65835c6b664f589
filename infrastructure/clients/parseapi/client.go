package parseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"vidlink/domain/model"
	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"
)

// Client calls the external parsing service. One POST per Parse call, no
// retries; the wait is bounded by the configured timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a parse API client. apiKey may be empty; when set it is
// sent as a bearer token.
func NewClient(baseURL, apiKey string, timeout time.Duration) repository.IVideoParser {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type parseRequest struct {
	URL string `json:"url"`
}

// upstreamError is the error envelope some upstream failures carry.
type upstreamError struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

// Parse posts the source URL to {baseURL}/parse and normalizes the response.
// A reachable-but-malformed payload is normalized best-effort; only transport
// failures and non-2xx statuses produce errors.
func (c *Client) Parse(ctx context.Context, url, platform string) (*model.VideoInfo, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(parseRequest{URL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapStatusError(resp)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to decode upstream payload")
		return nil, ErrParseFailed
	}

	return Normalize(&payload, platform), nil
}

func (c *Client) mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrTimeout
	}
	logger.GetLogger().WithField("error", err).Error("Upstream request failed")
	return err
}

func (c *Client) mapStatusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrNotFound
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var upErr upstreamError
	if err := json.Unmarshal(raw, &upErr); err == nil {
		if upErr.Message != "" {
			return errors.New(upErr.Message)
		}
		if upErr.Msg != "" {
			return errors.New(upErr.Msg)
		}
	}
	logger.GetLogger().
		WithField("status", resp.StatusCode).
		Error("Upstream returned error status")
	return ErrParseFailed
}
