package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("hackdex").Funcs(template.FuncMap{
	"noResults": func() string { return NoResultsMessage },
	"date":      func(t time.Time) string { return t.Format(DateLayout) },
}).ParseFS(templateFS, "templates/*.html"))

// Page is the standalone document written by WritePage.
type Page struct {
	Title string
	// BaseURL becomes the document base so relative card links resolve
	// against the catalog site.
	BaseURL string
	// Filter summarizes the active criteria; empty means none.
	Filter    string
	Total     int
	Cards     []Card
	Generated time.Time
}

// WriteResults writes the results fragment: one div.card per card, or the
// no-results paragraph when cards is empty. Output depends only on cards.
func WriteResults(w io.Writer, cards []Card) error {
	if err := templates.ExecuteTemplate(w, "results", cards); err != nil {
		return fmt.Errorf("render results: %w", err)
	}
	return nil
}

// WritePage writes a complete HTML document around the results fragment.
func WritePage(w io.Writer, page Page) error {
	if page.Title == "" {
		page.Title = "hackdex"
	}
	if err := templates.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
