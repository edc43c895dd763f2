package http

import (
	"errors"
	"net/http"

	"delivery-agent/internal/chat"
	pkgErrors "delivery-agent/pkg/errors"
)

var (
	errMissingFields = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing required fields: name, phone, message")
	errMissingPhone  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing required field: phone")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMissingFields):
		return errMissingFields
	case errors.Is(err, chat.ErrMissingPhone):
		return errMissingPhone
	default:
		return pkgErrors.ErrInternalServerError
	}
}
