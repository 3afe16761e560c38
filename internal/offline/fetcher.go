package offline

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirFetcher answers requests from a directory of site files the way the static
// server does, so the precache manifest can be checked before deploy.
type DirFetcher struct {
	Root string
}

func (f DirFetcher) Fetch(_ context.Context, req Request) (*Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, err
	}

	rel := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if rel == "" {
		rel = "index.html"
	}
	name := filepath.Join(f.Root, filepath.FromSlash(rel))

	data, err := os.ReadFile(name)
	if err != nil && path.Ext(rel) == "" {
		data, err = os.ReadFile(name + ".html")
		rel += ".html"
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &Response{Status: http.StatusNotFound, Type: ResponseBasic, Header: http.Header{}}, nil
	}
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if ct := mime.TypeByExtension(path.Ext(rel)); ct != "" {
		header.Set("Content-Type", ct)
	}
	return &Response{Status: http.StatusOK, Type: ResponseBasic, Header: header, Body: data}, nil
}

// ClientsFunc adapts plain functions to Clients. Nil fields are no-ops.
type ClientsFunc struct {
	OnSkipWaiting func(ctx context.Context) error
	OnClaim       func(ctx context.Context) error
}

func (c ClientsFunc) SkipWaiting(ctx context.Context) error {
	if c.OnSkipWaiting == nil {
		return nil
	}
	return c.OnSkipWaiting(ctx)
}

func (c ClientsFunc) Claim(ctx context.Context) error {
	if c.OnClaim == nil {
		return nil
	}
	return c.OnClaim(ctx)
}
