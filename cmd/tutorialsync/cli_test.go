package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial_sync/internal/domain"
	"tutorial_sync/testdata/utils"
)

// fakeAPI answers login with loginStatus, the tutorial listing with
// listStatus and every create call with createStatus.
type fakeAPI struct {
	loginStatus  int
	listStatus   int
	createStatus int
	creates      atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/admin/login":
		w.WriteHeader(f.loginStatus)
		if f.loginStatus == http.StatusOK {
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
			return
		}
		_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/tutorials":
		w.WriteHeader(f.listStatus)
		_, _ = w.Write([]byte(`[]`))
	default:
		f.creates.Add(1)
		w.WriteHeader(f.createStatus)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}
}

func newFakeAPI(t *testing.T, api *fakeAPI) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, baseURL string, chapters ...string) string {
	t.Helper()

	t.Setenv("TUTORIAL_SYNC_BASE_URL", "")
	t.Setenv("TUTORIAL_SYNC_EMAIL", "")
	t.Setenv("TUTORIAL_SYNC_PASSWORD", "")

	dir := t.TempDir()
	var b strings.Builder
	fmt.Fprintf(&b, "api:\n  base_url: %s\n  subject: git\n", baseURL)
	fmt.Fprintf(&b, "auth:\n  email: admin@example.com\n  password: pw\n  cache_dir: %s\n", filepath.Join(dir, "cache"))
	b.WriteString("content:\n  chapters:\n")
	for _, ch := range chapters {
		fmt.Fprintf(&b, "    - %s\n", ch)
	}
	b.WriteString("log:\n  level: error\n")

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheck_FailsWhenLoginRejected(t *testing.T) {
	srv := newFakeAPI(t, &fakeAPI{loginStatus: http.StatusUnauthorized, listStatus: http.StatusOK})
	cfg := writeConfig(t, srv.URL)

	err := execute("check", "--config", cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication")
}

func TestCheck_FailsWhenListingFails(t *testing.T) {
	srv := newFakeAPI(t, &fakeAPI{loginStatus: http.StatusOK, listStatus: http.StatusInternalServerError})
	cfg := writeConfig(t, srv.URL)

	err := execute("check", "--config", cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list tutorials")
}

func TestCheck_Succeeds(t *testing.T) {
	srv := newFakeAPI(t, &fakeAPI{loginStatus: http.StatusOK, listStatus: http.StatusOK})
	cfg := writeConfig(t, srv.URL)

	assert.NoError(t, execute("check", "--config", cfg))
}

func TestSync_SucceedsWhenChapterCreateFails(t *testing.T) {
	api := &fakeAPI{loginStatus: http.StatusOK, createStatus: http.StatusInternalServerError}
	srv := newFakeAPI(t, api)

	chapter := utils.WriteChapter(t, t.TempDir(), "git-basics",
		map[string]any{"title": "Git Basics"},
		utils.SectionFixture{Name: "01-intro", Metadata: map[string]any{"title": "Intro"}, Content: "# Intro\n"},
	)
	cfg := writeConfig(t, srv.URL, chapter)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	err := execute("sync", "--config", cfg, "--relogin=false", "--report", reportPath)

	require.NoError(t, err)
	assert.Equal(t, int32(1), api.creates.Load(), "sections must not be attempted after a failed chapter")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report domain.BatchReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Chapters, 1)
	assert.False(t, report.Chapters[0].Complete)
	assert.Equal(t, domain.ItemFailed, report.Chapters[0].Chapter.Status)
	assert.Equal(t, http.StatusInternalServerError, report.Chapters[0].Chapter.StatusCode)
}

func TestSync_SucceedsWhenSectionCreateFails(t *testing.T) {
	api := &fakeAPI{loginStatus: http.StatusOK, createStatus: http.StatusCreated}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sections") {
			api.creates.Add(1)
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		api.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	chapter := utils.WriteChapter(t, t.TempDir(), "git-basics",
		map[string]any{"title": "Git Basics"},
		utils.SectionFixture{Name: "01-intro", Metadata: map[string]any{"title": "Intro"}, Content: "# Intro\n"},
		utils.SectionFixture{Name: "02-setup", Metadata: map[string]any{"title": "Setup"}, Content: "# Setup\n"},
	)
	cfg := writeConfig(t, srv.URL, chapter)

	err := execute("sync", "--config", cfg, "--relogin=false", "--report", "")

	require.NoError(t, err)
	assert.Equal(t, int32(3), api.creates.Load())
}

func TestSync_FailsWhenLoginRejected(t *testing.T) {
	api := &fakeAPI{loginStatus: http.StatusUnauthorized, createStatus: http.StatusCreated}
	srv := newFakeAPI(t, api)
	chapter := utils.WriteChapter(t, t.TempDir(), "git-basics", map[string]any{"title": "Git Basics"})
	cfg := writeConfig(t, srv.URL, chapter)

	err := execute("sync", "--config", cfg, "--relogin=false", "--report", "")

	require.Error(t, err)
	assert.Equal(t, int32(0), api.creates.Load())
}
