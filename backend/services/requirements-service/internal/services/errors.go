package services

import (
	"fmt"

	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

// persistenceErr tags an unexpected store failure so callers can match it
// with errors.Is(err, utils.ErrPersistence) while keeping the cause.
func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", utils.ErrPersistence, op, err)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", utils.ErrInvalidInput, fmt.Sprintf(format, args...))
}
