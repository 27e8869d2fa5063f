package blocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm/hxshop"
)

func block(fields ...string) *hxshop.ContentBlock {
	b := &hxshop.ContentBlock{}
	for i := 0; i+1 < len(fields); i += 2 {
		b.Fields = append(b.Fields, hxshop.Field{Key: fields[i], Value: fields[i+1]})
	}
	return b
}

func TestHeroWithoutLink(t *testing.T) {
	result, err := hxshop.TestRender(Hero(block(
		FieldHeader, "New Drop",
		FieldDescription, "Fresh loops",
	)))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if !result.HTMLContainsAll("New Drop", "Fresh loops", `<div class="block">`) {
		t.Errorf("HTML = %q", result.HTML)
	}
	if result.HTMLContains("<a") {
		t.Error("hero without a link should not be clickable")
	}
}

func TestHeroWithLink(t *testing.T) {
	result, err := hxshop.TestRender(Hero(block(
		FieldHeader, "New Drop",
		FieldProductURL, `{"url":"/products/loop-kit"}`,
	)))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if !result.HTMLContains(`<a class="block" href="/products/loop-kit">`) {
		t.Errorf("HTML = %q, want link", result.HTML)
	}
	if !result.HTMLContains(HeroImage) {
		t.Error("missing hero image")
	}
}

func TestHeroMalformedLink(t *testing.T) {
	for _, raw := range []string{`{"url":`, `not json`, `{"href":"/x"}`, `[]`} {
		t.Run(raw, func(t *testing.T) {
			result, err := hxshop.TestRender(Hero(block(
				FieldHeader, "New Drop",
				FieldProductURL, raw,
			)))
			if err != nil {
				t.Fatalf("TestRender() error = %v", err)
			}
			if result.HTMLContains("<a") {
				t.Errorf("HTML = %q, want no link", result.HTML)
			}
			if !result.HTMLContains("New Drop") {
				t.Error("missing header")
			}
		})
	}
}

func TestHeroEscapesContent(t *testing.T) {
	result, err := hxshop.TestRender(Hero(block(FieldHeader, "<script>alert(1)</script>")))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if result.HTMLContains("<script>") {
		t.Errorf("HTML = %q, want escaped header", result.HTML)
	}
}

func TestHeroNil(t *testing.T) {
	result, err := hxshop.TestRender(Hero(nil))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if result.HTML != "" {
		t.Errorf("HTML = %q, want empty", result.HTML)
	}
}

func TestBannerArtworkShipped(t *testing.T) {
	for _, img := range []string{HeroImage, HeroImageInverted} {
		t.Run(img, func(t *testing.T) {
			path := filepath.Join("..", filepath.FromSlash(img))
			if _, err := os.Stat(path); err != nil {
				t.Errorf("banner artwork %s not found: %v", img, err)
			}
		})
	}
}
