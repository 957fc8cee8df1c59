package graphql

import "encoding/json"

// Request is the body of a GraphQL POST.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// response is the envelope every GraphQL server answers with.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorItem     `json:"errors"`
}

// ErrorItem is one entry of the "errors" array.
type ErrorItem struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}
