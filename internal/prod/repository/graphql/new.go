package graphql

import (
	"context"

	pkgGraphQL "prod-tracker/pkg/graphql"
	pkgLog "prod-tracker/pkg/log"
)

// Doer is the part of the GraphQL client the repository needs.
type Doer interface {
	Do(ctx context.Context, req pkgGraphQL.Request, out any) error
}

type implRepository struct {
	client Doer
	l      pkgLog.Logger
}

// New creates the GraphQL backed repository.
func New(client Doer, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
