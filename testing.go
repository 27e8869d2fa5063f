package hxshop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the output of rendering a component or page for testing.
//
// Provides convenience methods for asserting on HTML content, headers and
// status codes.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestRender renders a component and returns testable output.
//
// Use this for pure unit tests of blocks and page bodies. Await boundaries
// inside the component wait for their futures, so the output is the fully
// resolved markup.
//
//	result, err := hxshop.TestRender(blocks.Hero(block))
//	if !result.HTMLContains("New Drop") {
//	    t.Fatal("missing header")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context.
//
// Use this when the component reads request-scoped values such as the
// locale:
//
//	ctx := hxshop.WithLocale(context.Background(), hxshop.Locale{Country: "CA", Language: "FR"})
//	result, err := hxshop.TestRenderWithContext(ctx, blocks.ProductGrid(c))
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	html, err := RenderString(ctx, component)
	if err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       html,
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestGet issues a GET request for target against h and records the
// response.
//
//	result := hxshop.TestGet(regions.Handler(), url)
//	if !result.IsOK() {
//	    t.Fatal("expected success")
//	}
func TestGet(h http.Handler, target string) *TestResult {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}
