package offline_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"rwfw/backend/internal/offline"

	"github.com/stretchr/testify/require"
)

func TestDirFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("HOME"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.html"), []byte("ABOUT"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("CSS"), 0o600))

	f := offline.DirFetcher{Root: dir}
	ctx := context.Background()

	tests := []struct {
		url    string
		status int
		body   string
	}{
		{url: origin + "/", status: http.StatusOK, body: "HOME"},
		{url: origin + "/about", status: http.StatusOK, body: "ABOUT"},
		{url: origin + "/styles.css", status: http.StatusOK, body: "CSS"},
		{url: origin + "/missing.png", status: http.StatusNotFound},
		{url: origin + "/../../etc/passwd", status: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			resp, err := f.Fetch(ctx, offline.Request{Method: http.MethodGet, URL: tc.url})
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.Status)
			require.Equal(t, offline.ResponseBasic, resp.Type)
			if tc.body != "" {
				require.Equal(t, tc.body, string(resp.Body))
			}
		})
	}
}

func TestInstall_AgainstSiteDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"index.html", "styles.css", "offline.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}

	m, err := offline.NewManager(smallConfig(), offline.NewMemoryStorage(), offline.DirFetcher{Root: dir}, offline.ClientsFunc{})
	require.NoError(t, err)
	require.NoError(t, m.Install(context.Background()))

	require.NoError(t, os.Remove(filepath.Join(dir, "styles.css")))
	m, err = offline.NewManager(smallConfig(), offline.NewMemoryStorage(), offline.DirFetcher{Root: dir}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, m.Install(context.Background()), offline.ErrBadPrecache)
}
