package cms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler, attempts int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:        srv.URL,
		Subject:        "git",
		Timeout:        5 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func authHeaders() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer tok")
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/login", r.URL.Path)

		var req LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@example.com", req.Email)
		assert.Equal(t, "pw", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":3600}`))
	}), 1)

	resp, err := client.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestLogin_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"bad credentials"}`))
	}), 3)

	_, err := client.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, se.Body, "bad credentials")
}

func TestCreateChapter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/tutorials/git/chapters", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p ChapterPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "git-basics", p.Slug)
		assert.Equal(t, "Git Basics", p.MetaTitle)

		w.WriteHeader(http.StatusCreated)
	}), 1)

	err := client.CreateChapter(context.Background(), authHeaders(), ChapterPayload{
		Title:     "Git Basics",
		Slug:      "git-basics",
		Sequence:  1,
		Status:    1,
		MetaTitle: "Git Basics",
	})
	assert.NoError(t, err)
}

func TestCreateChapter_OnlyCreatedIsSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"slug":"git-basics"}`))
	}), 1)

	err := client.CreateChapter(context.Background(), authHeaders(), ChapterPayload{Slug: "git-basics"})
	require.Error(t, err)
	assert.Equal(t, http.StatusOK, StatusCode(err))
}

func TestCreateSection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/tutorials/git/chapters/git-basics/sections", r.URL.Path)

		var p SectionPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "01-intro", p.Slug)
		assert.Equal(t, "# Intro\n", p.ContentMarkdown)
		assert.True(t, p.IsFree)

		w.WriteHeader(http.StatusCreated)
	}), 1)

	err := client.CreateSection(context.Background(), authHeaders(), "git-basics", SectionPayload{
		Title:           "Intro",
		Slug:            "01-intro",
		ContentMarkdown: "# Intro\n",
		IsFree:          true,
	})
	assert.NoError(t, err)
}

func TestCreateSection_Conflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"section already exists"}`))
	}), 1)

	err := client.CreateSection(context.Background(), authHeaders(), "git-basics", SectionPayload{Slug: "01-intro"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestStatusErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}), 3)

	err := client.CreateChapter(context.Background(), authHeaders(), ChapterPayload{Slug: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTransportErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if assert.NoError(t, err) {
				_ = conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	}), 3)

	err := client.CreateChapter(context.Background(), authHeaders(), ChapterPayload{Slug: "x"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTransportErrorWithoutRetry(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := New(Config{BaseURL: baseURL, Subject: "git", Timeout: time.Second}, testLogger())

	err := client.CreateChapter(context.Background(), authHeaders(), ChapterPayload{Slug: "x"})
	require.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
	assert.Contains(t, err.Error(), "execute request")
}

func TestListTutorials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/tutorials", r.URL.Path)
		_, _ = w.Write([]byte(`[{"slug":"git"}]`))
	}), 1)

	raw, err := client.ListTutorials(context.Background(), authHeaders())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"slug":"git"}]`, string(raw))
}

func TestCalculateBackoff(t *testing.T) {
	c := &Client{initialBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, c.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, c.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, c.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, c.calculateBackoff(4))
}
