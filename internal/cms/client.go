package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Config holds CMS client configuration.
type Config struct {
	BaseURL        string
	Subject        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the tutorials admin REST API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	subject        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new CMS client.
func New(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		subject:        cfg.Subject,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "cms", "subject", cfg.Subject),
	}
}

// Subject returns the tutorial subject chapters are created under.
func (c *Client) Subject() string {
	return c.subject
}

// Login exchanges credentials for a bearer token. Any status other than
// 200 is returned as a *StatusError.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.call(ctx, http.MethodPost, c.baseURL+"/api/admin/login", nil,
		LoginRequest{Email: email, Password: password}, http.StatusOK, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateChapter posts a chapter under the configured subject. Only 201 is
// treated as success.
func (c *Client) CreateChapter(ctx context.Context, headers http.Header, chapter ChapterPayload) error {
	endpoint := fmt.Sprintf("%s/api/admin/tutorials/%s/chapters",
		c.baseURL, url.PathEscape(c.subject))
	return c.call(ctx, http.MethodPost, endpoint, headers, chapter, http.StatusCreated, nil)
}

// CreateSection posts a section under chapterSlug. Only 201 is treated as
// success.
func (c *Client) CreateSection(ctx context.Context, headers http.Header, chapterSlug string, section SectionPayload) error {
	endpoint := fmt.Sprintf("%s/api/admin/tutorials/%s/chapters/%s/sections",
		c.baseURL, url.PathEscape(c.subject), url.PathEscape(chapterSlug))
	return c.call(ctx, http.MethodPost, endpoint, headers, section, http.StatusCreated, nil)
}

// ListTutorials fetches the admin tutorial listing. It is used as a cheap
// authenticated probe.
func (c *Client) ListTutorials(ctx context.Context, headers http.Header) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodGet, c.baseURL+"/api/admin/tutorials", headers, nil, http.StatusOK, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, headers http.Header, body any, want int, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, method, endpoint, headers, payload, want, out)
		if err == nil || !retryable(err) {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"url", endpoint,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	if c.maxAttempts > 1 {
		return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
	}
	return err
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, headers http.Header, payload []byte, want int, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if payload != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "TutorialSync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// retryable is true for transport failures only. An answer from the API,
// whatever its status, is final.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
