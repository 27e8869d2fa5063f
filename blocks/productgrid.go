package blocks

import (
	"context"

	"github.com/a-h/templ"
	"github.com/pthm/hxshop"
	"golang.org/x/text/language"
)

// ProductGrid renders one card per product of c.
//
// A nil collection renders the empty grid. Each card shows the image,
// title, vendor and current price; the compare-at price is shown struck
// through beside it only when the product is on sale.
func ProductGrid(c *hxshop.Collection) templ.Component {
	return markup(func(ctx context.Context, h *html) {
		tag := language.English
		if loc, ok := hxshop.LocaleFromContext(ctx); ok {
			tag = loc.Tag()
		}

		h.raw(`<div class="all-products-grid">`)
		if c != nil {
			for _, p := range c.Products {
				productCard(h, p, tag)
			}
		}
		h.raw(`</div>`)
	})
}

func productCard(h *html, p hxshop.Product, tag language.Tag) {
	h.raw(`<a class="all-product" href="`)
	h.url(p.URL())
	h.raw(`">`)
	if p.Image != nil {
		image(h, p.Image, "(min-width: 45em) 20vw, 50vw")
	}
	h.raw(`<h4 class="mt-2">`)
	h.text(p.Title)
	h.raw(`</h4><p class="vendor-name mt-0">`)
	h.text(p.Vendor)
	h.raw(`</p><small class="flex gap-2">`)
	if p.OnSale() {
		h.raw(`<s class="compare-at line-through text-gray-500">`)
		h.text(p.CompareAtPrice.Format(tag))
		h.raw(`</s>`)
	}
	h.raw(`<span class="price">`)
	h.text(p.Price.Format(tag))
	h.raw(`</span></small></a>`)
}
