// Package web embeds the page templates and static assets served by the router.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// barWidth scales v against the largest value of its series, in percent.
	"barWidth": func(v, max int) float64 {
		if max <= 0 {
			return 0
		}
		return float64(v) / float64(max) * 100
	},
}

func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
