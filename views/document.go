package views

import (
	"bytes"
	"html/template"
	"io"
)

type documentData struct {
	Title string
	Body  template.HTML
}

// WriteDocument writes root as a complete HTML page.
func WriteDocument(w io.Writer, title string, root Element) error {
	var body bytes.Buffer
	if err := root.WriteHTML(&body); err != nil {
		return err
	}
	return templates.ExecuteTemplate(w, "document.html", documentData{
		Title: title,
		Body:  template.HTML(body.String()),
	})
}
