package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Justcode790/UniSeat-backend/internal/repository"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

// mapRepoError converts repository failures into API errors for resource.
func mapRepoError(err error, resource, action string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, resource+" not found")
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.Clone(appErrors.ErrConflict, resource+" already exists")
	case errors.Is(err, repository.ErrReferenced):
		return appErrors.Clone(appErrors.ErrConflict, resource+" is referenced by a seat plan")
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to %s %s", action, resource))
	}
}

func validationError(err error, resource string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+resource+" payload")
}
