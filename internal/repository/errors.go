package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate is returned when an insert or update violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrReferenced is returned when a delete is blocked by dependent rows.
var ErrReferenced = errors.New("record is referenced")

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// translate maps constraint violations onto the package sentinels and leaves
// every other error untouched.
func translate(err error) error {
	switch pqCode(err) {
	case "23505":
		return ErrDuplicate
	case "23503":
		return ErrReferenced
	default:
		return err
	}
}
