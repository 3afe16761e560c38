package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"rwfw/backend/pkg/logger"
)

// registerStatic serves the site's pages and assets from dir. Extensionless paths
// resolve to the matching .html page; anything else missing is a 404.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "init", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}
		if requestPath == "/" {
			return c.File(indexPath)
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		if isFile(candidate) {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		if path.Ext(cleanPath) == "" {
			if page := candidate + ".html"; isFile(page) {
				return c.File(page)
			}
			if page := filepath.Join(candidate, "index.html"); isFile(page) {
				return c.File(page)
			}
		}
		return echo.ErrNotFound
	})
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
