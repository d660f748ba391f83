package domain

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrInvalidBody = errors.New("invalid project body")
)
