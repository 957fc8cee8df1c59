package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert batch")
	ErrFailedToList   = errors.New("failed to list departments and models")
)
