package blocks

import (
	"context"

	"github.com/a-h/templ"
	"github.com/pthm/hxshop"
)

// Field keys read by the banner blocks.
const (
	FieldHeader      = "header"
	FieldDescription = "description"
	FieldProductURL  = "product_url"
	FieldLink        = "link"
)

// Banner artwork served from the static directory.
const (
	HeroImage         = "/static/omega-hero.svg"
	HeroImageInverted = "/static/omega-hero-inverted.svg"
)

// Hero renders the promotional banner.
//
// It reads header, description and the product_url link descriptor. With a
// valid link the banner is a clickable region navigating to it; without one
// it renders the same content in a plain container. A nil block renders
// nothing.
func Hero(block *hxshop.ContentBlock) templ.Component {
	if block == nil {
		return templ.NopComponent
	}
	f := block.Lookup()
	link, ok := f.Link(FieldProductURL)
	return markup(func(ctx context.Context, h *html) {
		h.raw(`<div class="hero mx-12 my-8">`)
		if ok {
			h.raw(`<a class="block" href="`)
			h.url(link.URL)
			h.raw(`">`)
		} else {
			h.raw(`<div class="block">`)
		}
		banner(h, HeroImage, f.Get(FieldHeader), f.Get(FieldDescription), false)
		if ok {
			h.raw(`</a>`)
		} else {
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

// banner writes the image with its overlaid header and description.
func banner(h *html, image, header, description string, shade bool) {
	h.raw(`<div class="relative"><img src="`)
	h.url(image)
	h.raw(`" alt="Hero" class="w-full h-[30vh] object-cover rounded-xl" loading="eager">`)
	if shade {
		h.raw(`<div class="absolute inset-0 bg-black/40 rounded-xl"></div>`)
	}
	h.raw(`<div class="absolute inset-0 flex flex-col justify-center p-8 text-white"><h2 class="text-2xl font-bold mb-2">`)
	h.text(header)
	h.raw(`</h2><p class="text-lg max-w-2xl">`)
	h.text(description)
	h.raw(`</p></div></div>`)
}
