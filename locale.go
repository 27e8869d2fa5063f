package hxshop

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the country and language a page is rendered for. Values use
// the platform's enum spelling: upper-case ISO codes such as "US" and "EN".
type Locale struct {
	Country  string
	Language string
}

// Tag returns the language tag for l, or English when l does not parse.
func (l Locale) Tag() language.Tag {
	s := strings.ToLower(l.Language)
	if l.Country != "" {
		s += "-" + l.Country
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// Variables returns the locale as query variables.
func (l Locale) Variables() map[string]any {
	return map[string]any{
		"country":  l.Country,
		"language": l.Language,
	}
}

// supportedLanguages are the storefront languages offered to Accept-Language
// matching. The first entry is the matcher's default.
var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// LocaleFromRequest resolves the request locale from its Accept-Language
// header. Components missing from the header, or matched with low
// confidence, come from fallback.
func LocaleFromRequest(r *http.Request, fallback Locale) Locale {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	loc := fallback
	_, idx, conf := languageMatcher.Match(tags...)
	if conf != language.No {
		base, _ := supportedLanguages[idx].Base()
		loc.Language = strings.ToUpper(base.String())
	}
	if region, conf := tags[0].Region(); conf == language.Exact {
		loc.Country = strings.ToUpper(region.String())
	}
	return loc
}

type localeKey struct{}

// WithLocale returns a context carrying loc for blocks rendered beneath it.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (Locale, bool) {
	loc, ok := ctx.Value(localeKey{}).(Locale)
	return loc, ok
}
