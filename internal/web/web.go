// Package web contiene las plantillas HTML del panel.
package web

import (
	"embed"
	"html/template"

	"alocacoes-admin/internal/timecodec"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"decode": timecodec.Decode,
}

// Templates parsea las plantillas embebidas.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}
