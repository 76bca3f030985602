package assemble

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageTemplate renders every report page; scope differences are handled by
// conditional blocks inside the template.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
