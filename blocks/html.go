// Package blocks holds the storefront's presentational content blocks.
//
// Every block is a pure function from already-fetched data (or nil) to a
// templ.Component. Blocks never fetch and never fail on missing content: a
// nil input renders the block's empty state and missing fields render as
// empty strings.
package blocks

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html accumulates markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text or attribute content.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// url writes a sanitized, escaped URL.
func (h *html) url(s string) {
	h.text(string(templ.URL(s)))
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// markup adapts a write function to templ.Component.
func markup(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Placeholder is shown while a region's data is still loading.
func Placeholder() templ.Component {
	return markup(func(_ context.Context, h *html) {
		h.raw(`<div class="loading">Loading...</div>`)
	})
}

// Container wraps children in a div with the given class.
func Container(class string, children ...templ.Component) templ.Component {
	return markup(func(ctx context.Context, h *html) {
		h.raw(`<div class="`)
		h.text(class)
		h.raw(`">`)
		for _, c := range children {
			h.component(ctx, c)
		}
		h.raw(`</div>`)
	})
}
