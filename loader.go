package hxshop

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Fetch runs one named query and returns its result.
type Fetch func(ctx context.Context) (any, error)

// Query is a named fetch.
type Query struct {
	Name  string
	Fetch Fetch
}

// Typed adapts a typed fetch function to Fetch.
func Typed[T any](fn func(ctx context.Context) (T, error)) Fetch {
	return func(ctx context.Context) (any, error) {
		return fn(ctx)
	}
}

// PageData is everything a page needs, built fresh for every request.
//
// Critical holds the results of queries that resolved before the response
// started. Deferred holds futures for queries that are still running; a
// deferred future settles to nil when its query fails.
type PageData struct {
	Critical map[string]any
	Deferred map[string]*Future[any]

	cancel context.CancelFunc
}

// Close stops deferred queries that are still running. Call it once the page
// has been rendered.
func (pd *PageData) Close() {
	if pd != nil && pd.cancel != nil {
		pd.cancel()
	}
}

// CriticalValue returns the critical result stored under name as T.
func CriticalValue[T any](pd *PageData, name string) (T, bool) {
	v, ok := pd.Critical[name].(T)
	return v, ok
}

// DeferredFuture returns the future for the named deferred query. Unknown
// names yield a future already settled to nil.
func (pd *PageData) DeferredFuture(name string) *Future[any] {
	if f, ok := pd.Deferred[name]; ok {
		return f
	}
	return Resolved[any](nil)
}

// Loader issues a page's queries.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a loader that reports deferred failures to log.
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// Load starts every deferred query, then runs the critical queries
// concurrently and waits for all of them.
//
// The first critical failure cancels the remaining critical and deferred
// queries and is returned as a *CriticalError; no PageData is returned in
// that case. Deferred failures never reach the caller: each is logged once
// and its future settles to nil.
func (l *Loader) Load(ctx context.Context, critical, deferred []Query) (*PageData, error) {
	if err := checkNames(critical); err != nil {
		return nil, err
	}
	if err := checkNames(deferred); err != nil {
		return nil, err
	}

	dctx, cancel := context.WithCancel(ctx)
	pd := &PageData{
		Critical: make(map[string]any, len(critical)),
		Deferred: make(map[string]*Future[any], len(deferred)),
		cancel:   cancel,
	}
	for _, q := range deferred {
		pd.Deferred[q.Name] = l.Defer(dctx, q)
	}

	results := make([]any, len(critical))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range critical {
		g.Go(func() error {
			v, err := l.run(gctx, q)
			if err != nil {
				return &CriticalError{Query: q.Name, Err: err}
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		cancel()
		return nil, err
	}

	for i, q := range critical {
		pd.Critical[q.Name] = results[i]
	}
	return pd, nil
}

// Defer starts q in the background and returns its future. A failed or
// panicking fetch is logged once and settles the future to nil.
func (l *Loader) Defer(ctx context.Context, q Query) *Future[any] {
	f := NewFuture[any]()
	go func() {
		v, err := l.run(ctx, q)
		if err != nil {
			l.log.Error("deferred query failed", "op", "Loader.Defer", "query", q.Name, "err", err)
			f.Resolve(nil)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// Run executes q synchronously with deferred-query failure semantics.
func (l *Loader) Run(ctx context.Context, q Query) any {
	v, err := l.run(ctx, q)
	if err != nil {
		l.log.Error("deferred query failed", "op", "Loader.Run", "query", q.Name, "err", err)
		return nil
	}
	return v
}

func (l *Loader) run(ctx context.Context, q Query) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return q.Fetch(ctx)
}

func checkNames(qs []Query) error {
	seen := make(map[string]struct{}, len(qs))
	for _, q := range qs {
		if _, ok := seen[q.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateQuery, q.Name)
		}
		seen[q.Name] = struct{}{}
	}
	return nil
}
