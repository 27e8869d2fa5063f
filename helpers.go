package hxshop

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context. Use this for fragments and for pages that do not
// stream:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxshop.Render(w, r, myTemplate())
//	}
//
// Pages with deferred regions use Stream instead.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// RenderString renders component to a string.
func RenderString(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests, including region fragment
// loads.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
//
// Boosted navigations swap the body without executing streamed swap
// scripts in order, so pages render their regions as fragments for them:
//
//	if hxshop.IsBoosted(r) {
//	    mode = home.ModeFragment
//	}
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}
