package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// publicDirs are the candidate locations of the bundled UI, checked in
// order. The first one containing index.html wins.
var publicDirs = []string{
	"public",
	filepath.Join("..", "public"),
	".",
}

// resolvePublicDir returns the directory holding index.html, or "" when the
// UI is not bundled next to the binary.
func resolvePublicDir() string {
	for _, dir := range publicDirs {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			return dir
		}
	}
	return ""
}

// fallbackHTML is served when the bundled UI cannot be located, so the root
// route never 404s.
const fallbackHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Excuse Email Draft Tool</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .error { color: red; }
    </style>
</head>
<body>
    <h1>Excuse Email Draft Tool</h1>
    <p class="error">Error: Could not find the application files.</p>
    <p>Please ensure the public/index.html file exists.</p>
</body>
</html>`

// Index serves the single-page UI at the root route.
func Index(c *gin.Context) {
	if dir := resolvePublicDir(); dir != "" {
		c.File(filepath.Join(dir, "index.html"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackHTML))
}
