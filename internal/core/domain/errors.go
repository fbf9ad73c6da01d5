package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrStoreConnection   = errors.New("store connection failed")
	ErrStoreQuery        = errors.New("store query failed")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrUnknownTransition = errors.New("unknown task transition")
)
