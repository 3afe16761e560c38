package urlutil_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"rwfw/backend/internal/urlutil"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestStripFragment(t *testing.T) {
	require.Equal(t, "https://fg2g-rwfw.com/about?x=1", urlutil.StripFragment(mustParse(t, "https://fg2g-rwfw.com/about?x=1#team")))
	require.Equal(t, "https://fg2g-rwfw.com/", urlutil.StripFragment(mustParse(t, "https://fg2g-rwfw.com/")))
}

func TestSameOrigin(t *testing.T) {
	base := mustParse(t, "https://fg2g-rwfw.com")
	require.True(t, urlutil.SameOrigin(base, mustParse(t, "https://FG2G-rwfw.com/styles.css")))
	require.False(t, urlutil.SameOrigin(base, mustParse(t, "http://fg2g-rwfw.com/")))
	require.False(t, urlutil.SameOrigin(base, mustParse(t, "https://fg2g-rwfw.com:8443/")))
	require.False(t, urlutil.SameOrigin(base, mustParse(t, "https://cdn.example.com/")))
}

func TestOrigin(t *testing.T) {
	o, ok := urlutil.Origin(" https://FG2G-rwfw.com/some/path?q=1 ")
	require.True(t, ok)
	require.Equal(t, "https://fg2g-rwfw.com", o.String())

	_, ok = urlutil.Origin("/relative")
	require.False(t, ok)
	_, ok = urlutil.Origin("not a url")
	require.False(t, ok)
}
