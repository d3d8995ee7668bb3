package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// render executes name.html and name.txt with the same data.
func render(name string, data any) (text, html string, err error) {
	var textBuf, htmlBuf bytes.Buffer

	if err := textTemplates.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("rendering %s.txt: %w", name, err)
	}
	if err := htmlTemplates.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return "", "", fmt.Errorf("rendering %s.html: %w", name, err)
	}
	return textBuf.String(), htmlBuf.String(), nil
}
