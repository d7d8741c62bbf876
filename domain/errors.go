package domain

import (
	"fmt"
	"strings"
)

// SchemaError reports required input columns that are absent from the whole
// table, not merely empty in some rows. It is fatal to the pipeline.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// InsufficientDataError is returned when sparsity filtering converges on an
// empty set. It carries the attempted thresholds so the caller can relax them.
type InsufficientDataError struct {
	MinUserReviews    int
	MinProductReviews int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"no records survive sparsity filtering (min_user_reviews=%d, min_product_reviews=%d)",
		e.MinUserReviews, e.MinProductReviews,
	)
}

// UnknownUserError is returned when a query targets a user absent from the
// filtered interaction matrix.
type UnknownUserError struct {
	UserID string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("unknown user: %q", e.UserID)
}

// UnknownProductError is returned when a query targets a product absent from
// the normalized dataset.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product: %q", e.ProductID)
}
