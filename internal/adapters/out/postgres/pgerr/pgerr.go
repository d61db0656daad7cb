// Package pgerr maps GORM failures onto the errs vocabulary shared by every adapter.
//
// The database must be opened with gorm.Config.TranslateError so that constraint
// violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
package pgerr

import (
	"context"
	"errors"

	"orderbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap classifies err raised while running operation. Context cancellation and
// errors already classified by errs are returned unchanged; anything else that is
// not a duplicate key is reported as an unavailable store.
func Wrap(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case classified(err):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	default:
		return errs.NewStoreUnavailableError(operation, err)
	}
}

// NotFound turns gorm.ErrRecordNotFound into an ObjectNotFoundError for param and id,
// and wraps anything else like Wrap.
func NotFound(operation, param string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return Wrap(operation, err)
}

func classified(err error) bool {
	for _, target := range []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrStoreUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
