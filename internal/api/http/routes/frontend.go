package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type FrontendOptions struct {
	// PublicDir is served under /static when it exists.
	PublicDir string
	// ClientBuildDir holds the built single-page client. Empty means the
	// client runs on its own dev server.
	ClientBuildDir string
	DevClientURL   string
}

// RegisterFrontend serves static assets and sets the fallback for unmatched
// paths: JSON 404 under /api, otherwise the client entry point.
func RegisterFrontend(r *gin.Engine, opt FrontendOptions) {
	if dirExists(opt.PublicDir) {
		r.Static("/static", opt.PublicDir)
	}

	index := ""
	if opt.ClientBuildDir != "" {
		index = filepath.Join(opt.ClientBuildDir, "index.html")
		if dirExists(filepath.Join(opt.ClientBuildDir, "assets")) {
			r.Static("/assets", filepath.Join(opt.ClientBuildDir, "assets"))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if index != "" {
			if asset := clientAsset(opt.ClientBuildDir, path); asset != "" {
				c.File(asset)
				return
			}
			serveIndex(c, index)
			return
		}
		if opt.DevClientURL != "" {
			c.Redirect(http.StatusFound, strings.TrimRight(opt.DevClientURL, "/")+c.Request.URL.RequestURI())
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// clientAsset returns the file under dir for a request path, or "" when it
// does not name a regular file inside dir.
func clientAsset(dir, path string) string {
	if path == "/" {
		return ""
	}
	full := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
	rel, err := filepath.Rel(dir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return ""
	}
	return full
}

// serveIndex writes the client entry point for any unmatched path.
// http.ServeFile refuses request paths containing "..", so the file is served
// by content instead.
func serveIndex(c *gin.Context, index string) {
	f, err := os.Open(index) //nolint:gosec // path comes from configuration
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	http.ServeContent(c.Writer, c.Request, "index.html", info.ModTime(), f)
}

func dirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
