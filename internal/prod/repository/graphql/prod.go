package graphql

import (
	"context"
	"errors"
	"fmt"

	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/repository"
	pkgGraphQL "prod-tracker/pkg/graphql"
)

// UpsertProd runs the upsertProd mutation. Errors reported by the server are
// returned as *graphql.Error so their message can be shown verbatim.
func (r *implRepository) UpsertProd(ctx context.Context, input prod.Payload) (model.Prod, error) {
	var out struct {
		UpsertProd model.Prod `json:"upsertProd"`
	}
	err := r.client.Do(ctx, pkgGraphQL.Request{
		Query:         upsertProdMutation,
		OperationName: "upsertProd",
		Variables:     map[string]any{"input": input},
	}, &out)
	if err != nil {
		r.l.Errorf(ctx, "repo.UpsertProd Do: %v", err)
		var gqlErr *pkgGraphQL.Error
		if errors.As(err, &gqlErr) {
			return model.Prod{}, gqlErr
		}
		return model.Prod{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return out.UpsertProd, nil
}

// ListDeptsAndModels runs allDeptsAndModelsQuery.
func (r *implRepository) ListDeptsAndModels(ctx context.Context) (repository.ListOptionsResult, error) {
	var out struct {
		Depts  []model.Dept      `json:"depts"`
		Models []model.ProdModel `json:"models"`
	}
	err := r.client.Do(ctx, pkgGraphQL.Request{
		Query:         allDeptsAndModelsQuery,
		OperationName: "allDeptsAndModelsQuery",
	}, &out)
	if err != nil {
		r.l.Errorf(ctx, "repo.ListDeptsAndModels Do: %v", err)
		return repository.ListOptionsResult{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return repository.ListOptionsResult{Depts: out.Depts, Models: out.Models}, nil
}
