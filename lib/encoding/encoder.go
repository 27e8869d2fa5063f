// Package encoding signs the small props that travel in region URLs.
//
// Props are packed with msgpack and signed with a truncated HMAC-SHA256:
//
//	base64url(msgpack(props)) "." base64url(hmac[:16])
//
// Tokens are visible to the client but cannot be altered without the key.
package encoding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// signatureSize is the number of HMAC bytes kept in a token.
const signatureSize = 16

// Encoder signs and verifies tokens.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256; an empty key is rejected.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}, nil
}

// Encode packs v and returns a signed token.
func (e *Encoder) Encode(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed) + "." +
		base64.RawURLEncoding.EncodeToString(e.sum(packed)), nil
}

// Decode verifies token and unpacks it into v.
func (e *Encoder) Decode(token string, v any) error {
	body, sig, ok := strings.Cut(token, ".")
	if !ok {
		return fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	packed, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !hmac.Equal(got, e.sum(packed)) {
		return ErrSignatureInvalid
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func (e *Encoder) sum(data []byte) []byte {
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	return mac.Sum(nil)[:signatureSize]
}
