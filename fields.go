package hxshop

import "github.com/tidwall/gjson"

// Field is a single key/value pair of a content block as delivered by the
// commerce platform's metaobject API.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ContentBlock is a named collection of fields. Field order carries no
// meaning and keys are unique per block instance.
type ContentBlock struct {
	Fields []Field `json:"fields"`
}

// Fields is a lookup over a content block's fields.
//
// Build it once per block render with NewFields and read values with
// FieldOrDefault. Every lookup is total: a missing key returns the default.
type Fields map[string]string

// NewFields indexes fields by key. When a key repeats, the first occurrence
// wins.
func NewFields(fields []Field) Fields {
	m := make(Fields, len(fields))
	for _, f := range fields {
		if _, ok := m[f.Key]; ok {
			continue
		}
		m[f.Key] = f.Value
	}
	return m
}

// Lookup returns the field lookup for b. A nil block yields an empty lookup.
func (b *ContentBlock) Lookup() Fields {
	if b == nil {
		return Fields{}
	}
	return NewFields(b.Fields)
}

// FieldOrDefault returns the value stored under key, or def when the key is
// absent or its value is empty.
func (f Fields) FieldOrDefault(key, def string) string {
	if v, ok := f[key]; ok && v != "" {
		return v
	}
	return def
}

// Get returns the value stored under key or the empty string.
func (f Fields) Get(key string) string {
	return f.FieldOrDefault(key, "")
}

// Link is a navigation target.
type Link struct {
	URL string `json:"url"`
}

// DecodeLink decodes a serialized link descriptor of the form {"url": "..."}.
//
// It reports false for empty input, malformed JSON, non-object values and
// descriptors without a non-empty string url. It never panics.
func DecodeLink(raw string) (Link, bool) {
	if raw == "" || !gjson.Valid(raw) {
		return Link{}, false
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return Link{}, false
	}
	u := doc.Get("url")
	if u.Type != gjson.String || u.Str == "" {
		return Link{}, false
	}
	return Link{URL: u.Str}, true
}

// Link decodes the link descriptor stored under key.
func (f Fields) Link(key string) (Link, bool) {
	return DecodeLink(f.Get(key))
}
