package hxshop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// DefaultRegionPrefix is where Regions.Handler is expected to be mounted.
const DefaultRegionPrefix = "/_r/"

// Regions is a registry of named regions that can be delivered as separate
// fragment requests instead of being streamed with the page.
//
// A page renders Defer(name, loc, placeholder) for each region; the client
// fetches the region once the page has loaded and swaps it in over the
// placeholder. Regions keep the deferred-query contract: a failed fetch is
// logged once and the region renders its empty state.
//
//	regs := hxshop.NewRegions(key, loader)
//	regs.Add("hero", hxshop.RegionFunc(home.FetchHero, blocks.Hero))
//	mux.Handle("/_r/", regs.Handler())
type Regions struct {
	mu      sync.RWMutex
	regions map[string]Region
	encoder *Encoder
	loader  *Loader
	prefix  string

	// OnError is called when a fragment request cannot be served.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegions creates a region registry signing tokens with key. It panics if
// the key is empty.
func NewRegions(key []byte, loader *Loader) *Regions {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxshop: failed to create encoder: %v", err))
	}
	if loader == nil {
		loader = NewLoader(nil)
	}

	rs := &Regions{
		regions: make(map[string]Region),
		encoder: enc,
		loader:  loader,
		prefix:  DefaultRegionPrefix,
	}

	// Default error handler
	rs.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if IsTokenError(err) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	return rs
}

// Prefix returns the URL prefix region requests are served under.
func (rs *Regions) Prefix() string {
	return rs.prefix
}

// Add registers a region under name.
// Panics if name is empty, contains a slash, or is already registered.
func (rs *Regions) Add(name string, region Region) {
	if name == "" || strings.Contains(name, "/") {
		panic(fmt.Sprintf("hxshop: invalid region name %q", name))
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, exists := rs.regions[name]; exists {
		panic(fmt.Sprintf("hxshop: region collision for %q", name))
	}
	rs.regions[name] = region
}

func (rs *Regions) lookup(name string) (Region, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	r, ok := rs.regions[name]
	return r, ok
}

// URL returns the fragment URL for name rendered for loc.
func (rs *Regions) URL(name string, loc Locale) (string, error) {
	token, err := rs.encoder.Encode(RegionProps{
		Region:   name,
		Country:  loc.Country,
		Language: loc.Language,
	})
	if err != nil {
		return "", err
	}
	return rs.prefix + url.PathEscape(name) + "?p=" + token, nil
}

// Defer returns a templ component that loads the region after page load.
//
// The placeholder renders immediately; the region is fetched once the page
// finishes loading and replaces the placeholder element.
//
// Uses HTMX's "load" trigger - fires once after page load completes.
func (rs *Regions) Defer(name string, loc Locale, placeholder templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, ok := rs.lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRegion, name)
		}
		u, err := rs.URL(name, loc)
		if err != nil {
			return err
		}
		return lazyRegion(u, placeholder, "load").Render(ctx, w)
	})
}

// Handler returns the HTTP handler for region fragments.
// Mount this at Prefix() in your application.
func (rs *Regions) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Fragments are meant to be swapped into a page; direct hits are
		// served but kept out of search indexes.
		w.Header().Add("Vary", "HX-Request")
		if !IsHTMX(r) {
			w.Header().Set("X-Robots-Tag", "noindex")
		}

		name := strings.Trim(strings.TrimPrefix(r.URL.Path, rs.prefix), "/")
		region, ok := rs.lookup(name)
		if !ok {
			rs.OnError(w, r, fmt.Errorf("%w: %q", ErrUnknownRegion, name))
			return
		}

		var props RegionProps
		if err := rs.encoder.Decode(r.URL.Query().Get("p"), &props); err != nil {
			rs.OnError(w, r, wrapEncodingError(err))
			return
		}
		if props.Region != name {
			rs.OnError(w, r, ErrSignatureInvalid)
			return
		}

		loc := props.Locale()
		ctx := WithLocale(r.Context(), loc)
		v := rs.loader.Run(ctx, Query{
			Name: name,
			Fetch: func(ctx context.Context) (any, error) {
				return region.Hydrate(ctx, loc)
			},
		})
		if err := Render(w, r.WithContext(ctx), region.Render(ctx, v)); err != nil {
			rs.loader.log.Error("region render failed", "op", "Regions.Handler", "region", name, "err", err)
		}
	})
}

// lazyRegion creates a placeholder that loads content on trigger.
func lazyRegion(url string, placeholder templ.Component, trigger string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, fmt.Sprintf(`<div class="hxs-region" hx-get="%s" hx-trigger="%s" hx-swap="outerHTML">`,
			templ.EscapeString(url), trigger))
		if err != nil {
			return err
		}
		if placeholder != nil {
			if err := placeholder.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div>`)
		return err
	})
}
