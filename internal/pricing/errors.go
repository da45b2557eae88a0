package pricing

import "errors"

var (
	// ErrEmptyCart means checkout was attempted with no lines. User-correctable.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrDependencyTimeout means a store lookup exceeded its deadline. Retryable.
	ErrDependencyTimeout = errors.New("dependency timed out")
	// ErrDependencyUnavailable means a store refused service. Retryable.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
