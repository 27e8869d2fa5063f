package blocks

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/hxshop"
)

// FeaturedCollection renders a single teaser linking to the collection page.
// A nil collection renders nothing.
func FeaturedCollection(c *hxshop.Collection) templ.Component {
	if c == nil {
		return templ.NopComponent
	}
	return markup(func(ctx context.Context, h *html) {
		h.raw(`<section class="mx-12 my-12"><a class="featured-collection" href="`)
		h.url(c.URL())
		h.raw(`">`)
		if c.Image != nil {
			h.raw(`<div class="featured-collection-image">`)
			image(h, c.Image, "100vw")
			h.raw(`</div>`)
		}
		h.raw(`<h1>Featured Products</h1></a></section>`)
	})
}

func image(h *html, img *hxshop.Image, sizes string) {
	h.raw(`<img src="`)
	h.url(img.URL)
	h.raw(`" alt="`)
	h.text(img.AltText)
	h.raw(`"`)
	if img.Width > 0 && img.Height > 0 {
		h.raw(` width="` + strconv.Itoa(img.Width) + `" height="` + strconv.Itoa(img.Height) + `"`)
	}
	h.raw(` sizes="`)
	h.text(sizes)
	h.raw(`" loading="lazy">`)
}
