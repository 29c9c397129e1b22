// backend/shared/go-utils/errors.go
package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	// Caller-supplied data failed shape/type validation.
	ErrInvalidInput = errors.New("invalid_input")

	// The store failed unexpectedly. Ingestion rolls back the whole batch.
	ErrPersistence = errors.New("persistence_failure")

	ErrNotFound       = errors.New("not_found")
	ErrOperatorExists = errors.New("operator_exists")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")
)
