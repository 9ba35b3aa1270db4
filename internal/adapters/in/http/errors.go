package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/pkg/errs"
)

type errorBody struct {
	Error string `json:"error"`
}

// errorResponse maps domain errors onto HTTP status codes. Conflicting state
// (invalid transition, exhausted inventory, lost optimistic race) is 409; a
// cascade failing mid-flight is a server fault because the transaction should
// have rolled it back whole.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientInventory),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrCascadeIncomplete):
		status = http.StatusInternalServerError
	}

	return c.JSON(status, errorBody{Error: err.Error()})
}
