// Package hxshop composes server-rendered storefront pages whose data comes
// from a remote commerce platform.
//
// A page is described by two groups of named queries. Critical queries must
// resolve before the response starts; deferred queries may finish later and
// are streamed to the client as they arrive. Regions that depend on deferred
// data render a placeholder first and swap in their real content when their
// query settles, each on its own schedule.
//
// # Loading
//
// Loader issues every query of a page at once:
//
//	pd, err := loader.Load(ctx,
//	    []hxshop.Query{{Name: "featured", Fetch: fetchFeatured}},
//	    []hxshop.Query{{Name: "hero", Fetch: fetchHero}},
//	)
//	if err != nil {
//	    // a critical query failed: no partial page
//	}
//	defer pd.Close()
//
// Critical queries are joined: the first failure cancels the rest and fails
// the page. Deferred queries never fail the page: a failure is logged once
// and the query's future settles to nil, which blocks render as empty
// content.
//
// # Rendering
//
// Await wraps a deferred future in a suspension boundary parameterized by a
// render function over the resolved value:
//
//	hxshop.Await(pd.DeferredFuture("hero"), blocks.Placeholder(), blocks.Hero)
//
// Stream writes a Document shell with placeholders, flushes it, and then
// writes every boundary as its future settles. Region order on the page is
// fixed by the shell, never by resolution order.
//
// Clients that cannot run streamed swap scripts get the same regions as
// separate fragment requests through Regions, modelled on HTMX's load
// trigger. Fragment URLs carry msgpack-encoded, HMAC-signed props.
//
// # Content
//
// Content blocks arrive as generic key/value fields. NewFields indexes them
// once per render and FieldOrDefault makes every lookup total. Serialized
// link descriptors are decoded with DecodeLink, which never fails loudly.
package hxshop
