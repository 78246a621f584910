package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a lookup matched nothing. It is surfaced to the
// caller verbatim as a 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewKeyNotFound reports an absent natural key, e.g.
// "Product not found with sku: ABCD1234"
func NewKeyNotFound(resource, key string, value interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s not found with %s: %v", resource, key, value)}
}

// NewNoMatches reports an empty result set after filtering, e.g.
// "No Such Products Found."
func NewNoMatches(resources string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("No Such %s Found.", resources)}
}

// BadRequestError reports input the persistence layer rejected, such as a
// duplicate natural key. The underlying message is surfaced as a 400.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsBadRequest reports whether err is a BadRequestError
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
