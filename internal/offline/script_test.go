package offline_test

import (
	"strings"
	"testing"

	"rwfw/backend/internal/offline"

	"github.com/stretchr/testify/require"
)

func TestScript_Default(t *testing.T) {
	script, err := offline.Script(offline.DefaultConfig(origin))
	require.NoError(t, err)

	js := string(script)
	require.Contains(t, js, `var CACHE_NAME = "rwfw-v1";`)
	require.Contains(t, js, `var OFFLINE_PAGE = "/offline.html";`)
	require.Contains(t, js, `var API_PREFIX = "/api/";`)
	require.Contains(t, js, `"/icons/tree-roots.svg"`)
	require.Contains(t, js, `"/favicon.ico"`)
	require.Contains(t, js, "self.skipWaiting()")
	require.Contains(t, js, "self.clients.claim()")
	require.Contains(t, js, "response.type !== 'basic'")
}

func TestScript_CustomVersion(t *testing.T) {
	cfg := offline.DefaultConfig(origin)
	cfg.Version = "rwfw-v7"
	cfg.Precache = []string{"/", "/it's.css"}

	script, err := offline.Script(cfg)
	require.NoError(t, err)
	require.Contains(t, string(script), `var CACHE_NAME = "rwfw-v7";`)
	require.Contains(t, string(script), `var PRECACHE_ASSETS = ["/","/it's.css"];`)
	require.False(t, strings.Contains(string(script), "rwfw-v1"))
}
