package deptcache

import "errors"

var (
	ErrNoParent   = errors.New("written batch has no department reference")
	ErrStoreRead  = errors.New("failed to read department from cache")
	ErrStoreWrite = errors.New("failed to write department to cache")
)
