package hxshop

import (
	"errors"

	"github.com/pthm/hxshop/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new region token encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// RegionProps is the state a region fragment request carries in its token.
type RegionProps struct {
	Region   string `msgpack:"r"`
	Country  string `msgpack:"c,omitempty"`
	Language string `msgpack:"l,omitempty"`
}

// Locale returns the locale the region was requested for.
func (p RegionProps) Locale() Locale {
	return Locale{Country: p.Country, Language: p.Language}
}

// wrapEncodingError wraps encoding package errors with hxshop sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	return err
}
