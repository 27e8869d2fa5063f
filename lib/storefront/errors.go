package storefront

import (
	"fmt"
	"strings"
)

// GraphQLError is one entry of a GraphQL response's errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Error reports GraphQL errors returned for a query.
type Error struct {
	Query  string
	Errors []GraphQLError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("storefront: %s: %s", e.Query, strings.Join(msgs, "; "))
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Query      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("storefront: %s: unexpected status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("storefront: %s: unexpected status %d: %s", e.Query, e.StatusCode, e.Body)
}
