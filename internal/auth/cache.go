package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// expirySkew treats a token as expired slightly early so it does not lapse
// between Load and the request that uses it.
const expirySkew = 30 * time.Second

// Token is a cached bearer token. ExpiresAt is nil when the API did not
// say how long the token lives.
type Token struct {
	AccessToken string     `json:"access_token"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ObtainedAt  time.Time  `json:"obtained_at"`
}

// Valid reports whether the token can still be presented at now.
func (t Token) Valid(now time.Time) bool {
	if t.AccessToken == "" {
		return false
	}
	if t.ExpiresAt == nil {
		return true
	}
	return now.Add(expirySkew).Before(*t.ExpiresAt)
}

// FileCache stores a single token as JSON on disk. It does no locking;
// two concurrent runs may race on the file.
type FileCache struct {
	path   string
	now    func() time.Time
	logger *slog.Logger
}

func NewFileCache(path string, logger *slog.Logger) *FileCache {
	return &FileCache{
		path:   path,
		now:    time.Now,
		logger: logger.With("component", "token_cache"),
	}
}

func (c *FileCache) Path() string {
	return c.path
}

// Load returns the cached token, or nil when there is no usable one.
// A corrupt or expired cache file is reported as absent.
func (c *FileCache) Load() (*Token, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		c.logger.Warn("ignoring unreadable token cache", "path", c.path, "error", err)
		return nil, nil
	}

	if !tok.Valid(c.now()) {
		c.logger.Debug("cached token expired or empty", "path", c.path)
		return nil, nil
	}

	return &tok, nil
}

func (c *FileCache) Save(tok Token) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}

	c.logger.Debug("token cached", "path", c.path)
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (c *FileCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token cache: %w", err)
	}
	return nil
}
