// Package service holds the domain use cases. Services apply defaults and
// reject incomplete input before anything reaches a repository.
package service

import "bookapi/internal/errs"

// ErrInvalidParameters is returned when a required field is empty after
// defaults have been applied. Nothing is persisted in that case.
var ErrInvalidParameters = errs.InvalidInput("invalid parameters")

// valueOr returns *p, or def when p is nil. An explicit empty string is kept.
func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
