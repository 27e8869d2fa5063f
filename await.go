package hxshop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// Await returns a suspension boundary around a deferred result.
//
// The boundary renders render(v) once f settles, where v is the settled
// value as T (a nil or mismatched value becomes the zero T, which blocks
// treat as "no content"). Each boundary resolves on its own: a slow region
// never holds back a faster one.
//
//	hxshop.Await(pd.DeferredFuture("hero"), blocks.Placeholder(), blocks.Hero)
//
// How the boundary waits depends on where it renders:
//   - future already settled: content renders inline.
//   - inside Stream: the placeholder renders now inside a wrapper element and
//     the content is streamed later, swapped in by id.
//   - anywhere else: rendering blocks until the future settles or the
//     context is done.
func Await[T any](f *Future[any], placeholder templ.Component, render func(T) templ.Component) templ.Component {
	content := func() templ.Component {
		v, _ := f.Value().(T)
		return render(v)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if f.Settled() {
			return content().Render(ctx, w)
		}
		if s := streamFromContext(ctx); s != nil {
			id := s.register(f.Done(), content)
			return writeBoundary(ctx, w, id, placeholder)
		}
		if _, err := f.Wait(ctx); err != nil {
			return err
		}
		return content().Render(ctx, w)
	})
}

// writeBoundary writes the wrapper that a streamed region later replaces.
func writeBoundary(ctx context.Context, w io.Writer, id string, placeholder templ.Component) error {
	if _, err := io.WriteString(w, fmt.Sprintf(`<div id="%s" class="hxs-region">`, id)); err != nil {
		return err
	}
	if placeholder != nil {
		if err := placeholder.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

// swapScript replaces a boundary's wrapper with its streamed template.
const swapScript = `<script>function hxsSwap(id){var t=document.getElementById(id+"-content"),r=document.getElementById(id);if(t&&r){r.replaceWith(t.content);}if(t){t.remove();}}</script>`

type streamKey struct{}

// stream collects boundaries registered while a page renders.
//
// Only the goroutine running Stream touches pending and next, so no lock is
// needed.
type stream struct {
	next    int
	pending []*boundary
}

type boundary struct {
	id      string
	done    <-chan struct{}
	content func() templ.Component
}

func streamFromContext(ctx context.Context) *stream {
	s, _ := ctx.Value(streamKey{}).(*stream)
	return s
}

func (s *stream) register(done <-chan struct{}, content func() templ.Component) string {
	s.next++
	id := "hxs-" + strconv.Itoa(s.next)
	s.pending = append(s.pending, &boundary{id: id, done: done, content: content})
	return id
}

// Stream writes doc as a progressively rendered HTML response.
//
// The document shell renders first with a placeholder for every pending
// Await boundary and is flushed to the client. Each boundary is then written
// as soon as its future settles, in completion order, followed by a flush.
// Region order on the page is fixed by the shell. Boundaries rendered while
// draining may register further boundaries; they are drained too.
//
// If the request is cancelled, draining stops and unsettled regions keep
// their placeholder.
func Stream(w http.ResponseWriter, r *http.Request, doc Document) error {
	s := &stream{}
	ctx := context.WithValue(r.Context(), streamKey{}, s)
	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.open(ctx, w); err != nil {
		return err
	}
	if len(s.pending) > 0 {
		if _, err := io.WriteString(w, swapScript); err != nil {
			return err
		}
	}
	flush()

	if err := s.drain(ctx, w, flush); err != nil {
		return err
	}
	return doc.close(w)
}

func (s *stream) drain(ctx context.Context, w io.Writer, flush func()) error {
	ready := make(chan *boundary)
	launched, outstanding := 0, 0
	for {
		for ; launched < len(s.pending); launched++ {
			b := s.pending[launched]
			outstanding++
			go func() {
				select {
				case <-b.done:
				case <-ctx.Done():
					return
				}
				select {
				case ready <- b:
				case <-ctx.Done():
				}
			}()
		}
		if outstanding == 0 {
			return nil
		}

		select {
		case b := <-ready:
			outstanding--
			if err := writeSettled(ctx, w, b); err != nil {
				return err
			}
			flush()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func writeSettled(ctx context.Context, w io.Writer, b *boundary) error {
	if _, err := io.WriteString(w, fmt.Sprintf(`<template id="%s-content">`, b.id)); err != nil {
		return err
	}
	if err := b.content().Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, fmt.Sprintf(`</template><script>hxsSwap(%q)</script>`, b.id))
	return err
}
