package blocks

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/hxshop"
)

const (
	spotifyPrefix      = "https://open.spotify.com/"
	spotifyEmbedPrefix = "https://open.spotify.com/embed/"

	// embedQuery is appended to every player URL.
	embedQuery = "?utm_source=generator&theme=0"
)

// EmbedURL returns the embeddable player URL for a streaming-service link.
// Links outside the service are returned unchanged.
func EmbedURL(url string) string {
	if rest, ok := strings.CutPrefix(url, spotifyPrefix); ok {
		return spotifyEmbedPrefix + rest
	}
	return url
}

// Curated renders the curated playlist block: a clickable banner opening
// the playlist in a new tab, followed by an embedded player.
//
// Without a decodable link the banner is not clickable and no player is
// embedded. A nil block renders nothing.
func Curated(block *hxshop.ContentBlock) templ.Component {
	if block == nil {
		return templ.NopComponent
	}
	f := block.Lookup()
	link, ok := f.Link(FieldLink)
	return markup(func(ctx context.Context, h *html) {
		h.raw(`<div class="curated mx-12 my-8">`)
		if ok {
			h.raw(`<a class="block" target="_blank" rel="noopener" href="`)
			h.url(link.URL)
			h.raw(`">`)
		} else {
			h.raw(`<div class="block">`)
		}
		banner(h, HeroImageInverted, f.Get(FieldHeader), f.Get(FieldDescription), true)
		if ok {
			h.raw(`</a>`)
			h.raw(`<div class="mt-4"><iframe class="rounded-xl" src="`)
			h.url(EmbedURL(link.URL) + embedQuery)
			h.raw(`" width="100%" height="352" frameborder="0" allowfullscreen="" ` +
				`allow="clipboard-write; encrypted-media; fullscreen; picture-in-picture" loading="lazy"></iframe></div>`)
		} else {
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}
