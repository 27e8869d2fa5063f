package hxshop

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pthm/hxshop/lib/encoding"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrCriticalQuery,
		ErrDuplicateQuery,
		ErrUnknownRegion,
		ErrSignatureInvalid,
		ErrInvalidFormat,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestCriticalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("load: %w", &CriticalError{Query: "featured", Err: cause})

	if !IsCritical(err) {
		t.Error("IsCritical() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), `"featured"`) {
		t.Errorf("Error() = %q, want query name", err.Error())
	}

	var ce *CriticalError
	if !errors.As(err, &ce) || ce.Query != "featured" {
		t.Errorf("errors.As() = %v, want CriticalError for featured", ce)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrUnknownRegion", ErrUnknownRegion, true},
		{"wrapped ErrUnknownRegion", fmt.Errorf("wrapped: %w", ErrUnknownRegion), true},
		{"other error", errors.New("other error"), false},
		{"ErrInvalidFormat", ErrInvalidFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			if result != tt.expect {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestIsTokenError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"ErrInvalidFormat", ErrInvalidFormat, true},
		{"wrapped ErrInvalidFormat", fmt.Errorf("decode: %w", ErrInvalidFormat), true},
		{"ErrCriticalQuery", ErrCriticalQuery, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsTokenError(tt.err)
			if result != tt.expect {
				t.Errorf("IsTokenError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"invalid format", fmt.Errorf("%w: bad", encoding.ErrInvalidFormat), ErrInvalidFormat},
		{"signature", encoding.ErrSignatureInvalid, ErrSignatureInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapEncodingError(tt.in)
			if got != tt.want {
				t.Errorf("wrapEncodingError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	other := errors.New("other")
	if got := wrapEncodingError(other); got != other {
		t.Errorf("wrapEncodingError(other) = %v, want passthrough", got)
	}
}
