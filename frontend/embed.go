package frontend

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/m-mizutani/goerr/v2"
)

// FS embeds the widget page, script and stylesheet
//
//go:embed all:dist
var FS embed.FS

const (
	// PageFile is the widget page template
	PageFile = "index.html"
	// ScriptFile is the widget script served minified
	ScriptFile = "burndown.js"
)

// Assets returns the embedded asset filesystem rooted at dist
func Assets() (fs.FS, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded assets")
	}

	if _, err := fs.Stat(sub, PageFile); err != nil {
		return nil, goerr.Wrap(err, "widget page is missing from embedded assets")
	}
	return sub, nil
}

// PageTemplate parses the widget page template
func PageTemplate() (*template.Template, error) {
	assets, err := Assets()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(assets, PageFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse widget page template")
	}
	return tmpl, nil
}
