package http

import (
	"errors"
	"net/http"

	"task-tracker/internal/tracker"
	pkgErrors "task-tracker/pkg/errors"
)

var (
	errTaskRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "either index or category and title are required")
	errInvalidIndex  = pkgErrors.NewHTTPError(http.StatusBadRequest, "index must be an integer")
	errWhenRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "exactly one of hhmm or start is required")
	errInvalidWidth  = pkgErrors.NewHTTPError(http.StatusBadRequest, "width must be a positive number")
	errUnknownTaskAt = pkgErrors.NewHTTPError(http.StatusBadRequest, "no task at that index")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unlisted is served as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrUnknownTask):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, tracker.ErrInvalidReservationTime),
		errors.Is(err, tracker.ErrReservationNotInFuture):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, tracker.ErrReservationIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, tracker.ErrNoReservation):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
