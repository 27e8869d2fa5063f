package hxshop

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Document is a full HTML page: a head with title, stylesheets and scripts,
// and a body component.
//
// Render writes the whole page in one pass; Stream writes the same markup
// but holds the closing tags back until every pending region is written.
type Document struct {
	Lang        string
	Title       string
	Stylesheets []string
	Scripts     []string
	Body        templ.Component
}

// Render implements templ.Component.
func (d Document) Render(ctx context.Context, w io.Writer) error {
	if err := d.open(ctx, w); err != nil {
		return err
	}
	return d.close(w)
}

func (d Document) open(ctx context.Context, w io.Writer) error {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}
	head := `<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width,initial-scale=1">` +
		`<title>` + templ.EscapeString(d.Title) + `</title>`
	for _, href := range d.Stylesheets {
		head += `<link rel="stylesheet" href="` + templ.EscapeString(string(templ.URL(href))) + `">`
	}
	for _, src := range d.Scripts {
		head += `<script src="` + templ.EscapeString(string(templ.URL(src))) + `"></script>`
	}
	head += `</head><body>`
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if d.Body != nil {
		return d.Body.Render(ctx, w)
	}
	return nil
}

func (d Document) close(w io.Writer) error {
	_, err := io.WriteString(w, `</body></html>`)
	return err
}
