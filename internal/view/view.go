// Package view renders the HTML pages of the application.
//
// Every page under templates/pages is parsed together with the shared
// layout once at start-up; the resulting set is read-only and safe for
// concurrent use. Pages define a "title" and a "content" block which the
// layout's "base" template places into the document.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page names.
const (
	Home              = "home"
	FroyoForm         = "froyo_form"
	FroyoResults      = "froyo_results"
	FavoritesForm     = "favorites_form"
	FavoritesResults  = "favorites_results"
	MessageForm       = "message_form"
	MessageResults    = "message_results"
	CalculatorForm    = "calculator_form"
	CalculatorResults = "calculator_results"
	HoroscopeForm     = "horoscope_form"
	HoroscopeResults  = "horoscope_results"
	Error             = "error"
)

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return NewFromFS(templateFS)
}

// NewFromFS parses the layout and pages from fsys. It expects the same
// "templates/layout.html" and "templates/pages/*.html" structure as the
// embedded set.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Pages returns the sorted names of all parsed pages.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Render executes page into w. Output is buffered so a failing template never
// leaves a partial document behind.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view: unknown page %q", page)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := t.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("view: render %s: %w", page, err)
	}
	_, err := w.Write(buf.B)
	return err
}

var funcs = template.FuncMap{
	// number prints the shortest decimal that round-trips, so 2.0 shows as "2".
	"number": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"join": strings.Join,
}
