// Package home implements the storefront home page: a featured collection
// loaded before the response starts, and a hero banner, product grid and
// curated playlist that stream in as their queries settle.
package home

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pthm/hxshop"
	"github.com/pthm/hxshop/blocks"
	"github.com/pthm/hxshop/lib/storefront"
)

// Title is the home page's document title.
const Title = "Omega-Create"

// Query and region names.
const (
	QueryFeatured = "featuredCollection"
	QueryProducts = "allProducts"
	QueryHero     = "hero"
	QueryCurated  = "produced"
)

// Mode selects how deferred regions reach the client.
type Mode string

const (
	// ModeStream writes deferred regions into the page response as they
	// settle.
	ModeStream Mode = "stream"
	// ModeFragment leaves placeholders that fetch each region separately
	// after the page loads.
	ModeFragment Mode = "fragment"
)

// Executor runs a storefront query and decodes its data into out.
type Executor interface {
	Query(ctx context.Context, req storefront.Request, out any) error
}

// Metaobject identifies a content entry on the platform.
type Metaobject struct {
	Handle string
	Type   string
}

// Options configures the home page.
type Options struct {
	// ProductsCollection is the handle of the collection shown in the grid.
	ProductsCollection string
	// ProductsLimit caps the number of products in the grid.
	ProductsLimit int
	Hero          Metaobject
	Curated       Metaobject
	DefaultLocale hxshop.Locale
	Mode          Mode
	// HTMXScript is loaded in fragment mode.
	HTMXScript string
}

// DefaultOptions returns the options of the production storefront.
func DefaultOptions() Options {
	return Options{
		ProductsCollection: "show-on-home-page",
		ProductsLimit:      50,
		Hero: Metaobject{
			Handle: "newest-release-information-qs5zqkx4",
			Type:   "newest_release_information",
		},
		Curated: Metaobject{
			Handle: "produced-by-omega-playlist-rntw8mza",
			Type:   "produced_by_omega_playlist",
		},
		DefaultLocale: hxshop.Locale{Country: "US", Language: "EN"},
		Mode:          ModeStream,
		HTMXScript:    "https://unpkg.com/htmx.org@2.0.4",
	}
}

// Home serves the home page.
type Home struct {
	exec    Executor
	loader  *hxshop.Loader
	regions *hxshop.Regions
	opts    Options
	log     *slog.Logger

	// OnError is called when the page cannot be rendered because a critical
	// query failed.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// New creates the home page and registers its deferred regions with
// regions so they can also be served as fragments.
func New(exec Executor, loader *hxshop.Loader, regions *hxshop.Regions, opts Options, log *slog.Logger) *Home {
	if log == nil {
		log = slog.Default()
	}
	if opts.Mode == "" {
		opts.Mode = ModeStream
	}
	h := &Home{
		exec:    exec,
		loader:  loader,
		regions: regions,
		opts:    opts,
		log:     log,
	}
	h.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, "Storefront unavailable", http.StatusBadGateway)
	}

	regions.Add(QueryHero, hxshop.RegionFunc(h.FetchHero, blocks.Hero))
	regions.Add(QueryProducts, hxshop.RegionFunc(h.FetchProducts, blocks.ProductGrid))
	regions.Add(QueryCurated, hxshop.RegionFunc(h.FetchCurated, blocks.Curated))
	return h
}

// Load issues the page's queries for loc. In fragment mode the deferred
// queries are left to the region endpoint.
func (h *Home) Load(ctx context.Context, loc hxshop.Locale, mode Mode) (*hxshop.PageData, error) {
	critical := []hxshop.Query{
		{Name: QueryFeatured, Fetch: withLocale(h.FetchFeatured, loc)},
	}
	var deferred []hxshop.Query
	if mode == ModeStream {
		deferred = []hxshop.Query{
			{Name: QueryProducts, Fetch: withLocale(h.FetchProducts, loc)},
			{Name: QueryHero, Fetch: withLocale(h.FetchHero, loc)},
			{Name: QueryCurated, Fetch: withLocale(h.FetchCurated, loc)},
		}
	}
	return h.loader.Load(ctx, critical, deferred)
}

// ServeHTTP renders the page for the request's locale.
func (h *Home) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "Home.ServeHTTP"
	log := h.log.With("op", op)

	loc := hxshop.LocaleFromRequest(r, h.opts.DefaultLocale)
	mode := h.opts.Mode
	if hxshop.IsBoosted(r) {
		mode = ModeFragment
	}

	pd, err := h.Load(r.Context(), loc, mode)
	if err != nil {
		log.Error("page load failed", "err", err, "country", loc.Country, "language", loc.Language)
		h.OnError(w, r, err)
		return
	}
	defer pd.Close()

	r = r.WithContext(hxshop.WithLocale(r.Context(), loc))
	doc := h.Document(pd, loc, mode)
	if mode == ModeStream {
		err = hxshop.Stream(w, r, doc)
	} else {
		err = hxshop.Render(w, r, doc)
	}
	if err != nil {
		log.Error("page render failed", "err", err, "mode", string(mode))
	}
}

// FetchFeatured returns the most recently updated collection, or nil when
// the store has none.
func (h *Home) FetchFeatured(ctx context.Context, loc hxshop.Locale) (*hxshop.Collection, error) {
	var out struct {
		Collections storefront.Connection[storefront.CollectionNode] `json:"collections"`
	}
	err := h.exec.Query(ctx, storefront.Request{
		Name:      "FeaturedCollection",
		Document:  featuredCollectionQuery,
		Variables: loc.Variables(),
	}, &out)
	if err != nil {
		return nil, err
	}
	if len(out.Collections.Nodes) == 0 {
		return nil, nil
	}
	return out.Collections.Nodes[0].Collection(), nil
}

// FetchProducts returns the grid collection with its first products sorted
// by title, or nil when the collection does not exist.
func (h *Home) FetchProducts(ctx context.Context, loc hxshop.Locale) (*hxshop.Collection, error) {
	vars := loc.Variables()
	vars["handle"] = h.opts.ProductsCollection
	vars["first"] = h.opts.ProductsLimit

	var out struct {
		Collection *storefront.CollectionNode `json:"collection"`
	}
	err := h.exec.Query(ctx, storefront.Request{
		Name:      "CollectionProducts",
		Document:  collectionProductsQuery,
		Variables: vars,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Collection == nil {
		return nil, nil
	}
	return out.Collection.Collection(), nil
}

// FetchHero returns the hero banner content.
func (h *Home) FetchHero(ctx context.Context, loc hxshop.Locale) (*hxshop.ContentBlock, error) {
	return h.fetchMetaobject(ctx, loc, h.opts.Hero)
}

// FetchCurated returns the curated playlist content.
func (h *Home) FetchCurated(ctx context.Context, loc hxshop.Locale) (*hxshop.ContentBlock, error) {
	return h.fetchMetaobject(ctx, loc, h.opts.Curated)
}

func (h *Home) fetchMetaobject(ctx context.Context, loc hxshop.Locale, m Metaobject) (*hxshop.ContentBlock, error) {
	vars := loc.Variables()
	vars["handle"] = m.Handle
	vars["type"] = m.Type

	var out struct {
		Metaobject *hxshop.ContentBlock `json:"metaobject"`
	}
	err := h.exec.Query(ctx, storefront.Request{
		Name:      "Metaobject",
		Document:  metaobjectQuery,
		Variables: vars,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Metaobject, nil
}

func withLocale[T any](fetch func(context.Context, hxshop.Locale) (T, error), loc hxshop.Locale) hxshop.Fetch {
	return hxshop.Typed(func(ctx context.Context) (T, error) {
		return fetch(ctx, loc)
	})
}
