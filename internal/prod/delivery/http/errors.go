package http

import (
	"errors"
	"net/http"

	"prod-tracker/internal/prod"
	pkgErrors "prod-tracker/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is reported as an internal error.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, prod.ErrFormNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "form not found")
	case errors.Is(err, prod.ErrDeptNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "department not cached")
	case errors.Is(err, prod.ErrSubmitInFlight):
		return pkgErrors.NewHTTPError(http.StatusConflict, "submit already in progress")
	case errors.Is(err, prod.ErrFieldLocked):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "field cannot be edited in this mode")
	case errors.Is(err, prod.ErrMissingRecord):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "record id is required")
	case errors.Is(err, prod.ErrUnknownField),
		errors.Is(err, prod.ErrUnknownMode),
		errors.Is(err, prod.ErrUnknownStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
