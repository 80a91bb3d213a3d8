package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a record with the same unique key already exists
	ErrDuplicate = errors.New("duplicate record")

	// ErrConditionFailed indicates a conditional update was rejected by the
	// store, e.g. a balance decrement whose sufficiency condition no longer
	// holds
	ErrConditionFailed = errors.New("condition failed")
)
