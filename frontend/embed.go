package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// FS embeds the dashboard templates and static assets
//
//go:embed templates static
var FS embed.FS

// DashboardTemplate parses the dashboard page template
func DashboardTemplate(funcs template.FuncMap) (*template.Template, error) {
	return template.New("dashboard.html.tmpl").Funcs(funcs).ParseFS(FS, "templates/dashboard.html.tmpl")
}

// GetStaticFS returns the embedded static assets for HTTP serving
func GetStaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
