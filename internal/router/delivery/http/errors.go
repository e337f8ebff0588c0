package http

import (
	"errors"
	"net/http"

	"agent-router/internal/registry"
	"agent-router/internal/router"
	pkgErrors "agent-router/pkg/errors"
)

var errNameRequired = errors.New("name is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, router.ErrUnknownStrategy):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, registry.ErrAgentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "agent not found")
	case errors.Is(err, registry.ErrEmptyName),
		errors.Is(err, registry.ErrInvalidLoad),
		errors.Is(err, registry.ErrInvalidPerformance):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
