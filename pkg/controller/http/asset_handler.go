package http

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/m-mizutani/goerr/v2"
)

// AssetHandler serves the embedded widget assets. Scripts are minified once
// when the handler is created.
type AssetHandler struct {
	files    fs.FS
	minified map[string][]byte
	modTime  time.Time
}

// NewAssetHandler creates a new asset handler. With minify off scripts are
// served as written, which is easier to debug.
func NewAssetHandler(files fs.FS, minify bool) (*AssetHandler, error) {
	h := &AssetHandler{
		files:    files,
		minified: make(map[string][]byte),
		modTime:  time.Now(),
	}

	scripts, err := fs.Glob(files, "*.js")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scripts")
	}

	for _, name := range scripts {
		src, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read script", goerr.V("file", name))
		}

		result := api.Transform(string(src), api.TransformOptions{
			Loader:            api.LoaderJS,
			Target:            api.ES2015,
			MinifySyntax:      minify,
			MinifyIdentifiers: minify,
			MinifyWhitespace:  minify,
		})
		if len(result.Errors) > 0 {
			return nil, goerr.New("failed to transform script",
				goerr.V("file", name),
				goerr.V("error", result.Errors[0].Text))
		}
		h.minified[name] = result.Code
	}

	return h, nil
}

// ServeHTTP implements the http.Handler interface
func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || name == "index.html" {
		http.NotFound(w, r)
		return
	}

	if contentType := getContentType(name); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=300")

	if code, ok := h.minified[name]; ok {
		http.ServeContent(w, r, name, h.modTime, bytes.NewReader(code))
		return
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, h.modTime, bytes.NewReader(data))
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}
