package hxshop

import (
	"context"

	"github.com/a-h/templ"
)

// Hydrater is implemented by regions to fetch their data for a locale.
//
// Hydrate runs once per fragment request. An error is not fatal: the region
// logs it and renders its empty state, the same way a failed deferred query
// does on a streamed page.
//
//	func (r heroRegion) Hydrate(ctx context.Context, loc hxshop.Locale) (any, error) {
//	    return r.home.FetchHero(ctx, loc)
//	}
type Hydrater interface {
	Hydrate(ctx context.Context, loc Locale) (any, error)
}

// Renderer is implemented by regions to produce templ output from hydrated
// data. The value is nil when hydration failed.
//
// Render should be pure: it reads v and produces HTML without side effects.
type Renderer interface {
	Render(ctx context.Context, v any) templ.Component
}

// Region combines Hydrater and Renderer.
type Region interface {
	Hydrater
	Renderer
}

// RegionFunc builds a Region from a typed fetch and render pair.
func RegionFunc[T any](fetch func(context.Context, Locale) (T, error), render func(T) templ.Component) Region {
	return regionFunc[T]{fetch: fetch, render: render}
}

type regionFunc[T any] struct {
	fetch  func(context.Context, Locale) (T, error)
	render func(T) templ.Component
}

func (r regionFunc[T]) Hydrate(ctx context.Context, loc Locale) (any, error) {
	return r.fetch(ctx, loc)
}

func (r regionFunc[T]) Render(ctx context.Context, v any) templ.Component {
	t, _ := v.(T)
	return r.render(t)
}
