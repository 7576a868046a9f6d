package v1

import (
	"net/http"
	"path"

	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SPAHandler serves the prebuilt client from buildDir. Paths that do not name
// a file get index.html so client-side routing works.
func SPAHandler(buildDir string) gin.HandlerFunc {
	root := http.Dir(buildDir)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			NotFoundHandler(c)
			return
		}

		name := path.Clean("/" + c.Request.URL.Path)
		if serveFile(c, root, name) || serveFile(c, root, "/index.html") {
			return
		}
		NotFoundHandler(c)
	}
}

// NotFoundHandler answers unmatched routes; ErrorHandler renders the envelope
func NotFoundHandler(c *gin.Context) {
	c.Error(apperror.NotFound("Not Found"))
}

// serveFile writes name from root if it is a regular file
func serveFile(c *gin.Context, root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
