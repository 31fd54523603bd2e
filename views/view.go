// Package views holds the renderable pages of the web front and the layout
// container used to frame them.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

// templates is parsed once at startup. Panics on syntax errors so that a
// broken template never reaches a request.
var templates = template.Must(
	template.New("views").Funcs(template.FuncMap{
		"markdown":   renderMarkdown,
		"formatTime": formatTime,
	}).ParseFS(templateFiles, "templates/*.html"),
)

// View renders one unit of a page.
type View interface {
	Name() string
	Render(r *http.Request) (Element, error)
}

// LayoutName is the name of the container produced by Flex.
const LayoutName = "layout"

type flexView struct {
	children []View
}

// Flex lays children out side by side, in order.
func Flex(children ...View) View {
	return &flexView{children: children}
}

func (f *flexView) Name() string { return LayoutName }

func (f *flexView) Render(r *http.Request) (Element, error) {
	el := Element{Name: LayoutName, Class: "flex", Children: make([]Element, 0, len(f.children))}
	for _, child := range f.children {
		c, err := child.Render(r)
		if err != nil {
			return Element{}, err
		}
		el.Children = append(el.Children, c)
	}
	return el, nil
}

// templateView renders templates/<name>.html with whatever data returns.
type templateView struct {
	name string
	data func(r *http.Request) any
}

func (v *templateView) Name() string { return v.name }

func (v *templateView) Render(r *http.Request) (Element, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, v.name+".html", v.data(r)); err != nil {
		return Element{}, fmt.Errorf("render %s: %w", v.name, err)
	}
	return Element{Name: v.name, Markup: template.HTML(buf.String())}, nil
}
