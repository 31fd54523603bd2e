package views

import (
	"fmt"
	"html/template"
	"io"
)

// Element is a node of a rendered page. Leaves carry the markup a view
// produced; containers carry a class and ordered children. An element with
// a class is a container even when it has no children.
type Element struct {
	Name     string
	Class    string
	Markup   template.HTML
	Children []Element
}

// IsContainer reports whether the element wraps other elements.
func (e Element) IsContainer() bool {
	return e.Class != ""
}

// WriteHTML serialises the tree rooted at e.
func (e Element) WriteHTML(w io.Writer) error {
	if !e.IsContainer() {
		_, err := io.WriteString(w, string(e.Markup))
		return err
	}

	if _, err := fmt.Fprintf(w, `<div class="%s" data-view="%s">`,
		template.HTMLEscapeString(e.Class), template.HTMLEscapeString(e.Name)); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := child.WriteHTML(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>")
	return err
}
