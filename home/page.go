package home

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/hxshop"
	"github.com/pthm/hxshop/blocks"
)

// Stylesheet is the storefront's compiled stylesheet.
const Stylesheet = "/static/app.css"

// Document returns the page for pd. Regions are laid out in a fixed order
// regardless of which deferred query settles first.
func (h *Home) Document(pd *hxshop.PageData, loc hxshop.Locale, mode Mode) hxshop.Document {
	featured, _ := hxshop.CriticalValue[*hxshop.Collection](pd, QueryFeatured)

	doc := hxshop.Document{
		Lang:        strings.ToLower(loc.Language),
		Title:       Title,
		Stylesheets: []string{Stylesheet},
		Body: blocks.Container("home",
			deferred(h, pd, loc, mode, QueryHero, blocks.Hero),
			blocks.FeaturedCollection(featured),
			blocks.Container("all-products mx-12",
				deferred(h, pd, loc, mode, QueryProducts, blocks.ProductGrid),
			),
			deferred(h, pd, loc, mode, QueryCurated, blocks.Curated),
		),
	}
	if mode == ModeFragment && h.opts.HTMXScript != "" {
		doc.Scripts = append(doc.Scripts, h.opts.HTMXScript)
	}
	return doc
}

// deferred renders the region called name: an Await boundary over its
// future when streaming, a fragment placeholder otherwise.
func deferred[T any](h *Home, pd *hxshop.PageData, loc hxshop.Locale, mode Mode, name string, render func(T) templ.Component) templ.Component {
	if mode == ModeFragment {
		return h.regions.Defer(name, loc, blocks.Placeholder())
	}
	return hxshop.Await(pd.DeferredFuture(name), blocks.Placeholder(), render)
}
