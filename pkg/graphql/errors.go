package graphql

import (
	"errors"
	"strings"
)

var ErrEmptyData = errors.New("graphql response has no data")

// Error is returned when the server answered with a non-empty "errors" array.
type Error struct {
	Items []ErrorItem
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		msgs = append(msgs, it.Message)
	}
	return "GraphQL error: " + strings.Join(msgs, "; ")
}
