package repository

import (
	"context"

	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
)

// Repository is the composed interface for the remote data API.
type Repository interface {
	prod.Writer
	OptionsRepository
}

// OptionsRepository fetches the lists a create form picks from.
type OptionsRepository interface {
	ListDeptsAndModels(ctx context.Context) (ListOptionsResult, error)
}

// ListOptionsResult holds departments and product models in server order.
type ListOptionsResult struct {
	Depts  []model.Dept
	Models []model.ProdModel
}
