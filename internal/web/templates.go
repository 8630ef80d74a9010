package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

type TemplateRegistry struct {
	prelander *template.Template
}

func NewTemplateRegistry() (*TemplateRegistry, error) {
	t, err := template.ParseFS(templateFS, "templates/prelander.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRegistry{prelander: t}, nil
}

type PrelanderData struct {
	// FallbackBot is where the page script sends the visitor when the
	// capture round trip fails.
	FallbackBot string
}

func (tr *TemplateRegistry) RenderPrelander(w http.ResponseWriter, data PrelanderData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tr.prelander.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
