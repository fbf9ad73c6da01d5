package view

import (
	"embed"
	"html/template"

	"todo/pkg/translator"
)

const (
	BoardTemplate = "board.html"
	ErrorTemplate = "error.html"
)

//go:embed templates/*.html
var templates embed.FS

var funcs = template.FuncMap{
	"t": translate,
}

// Templates parses the embedded page templates. It panics on a malformed
// template since they are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templates, "templates/*.html"))
}

func translate(lang, key string) string {
	msg, _ := translator.Localize(lang, key)
	return msg
}
