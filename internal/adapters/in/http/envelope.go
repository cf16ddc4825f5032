package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Response is the body of every order endpoint reply.
type Response struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data"`
}

func success(code int, message string, data any) Response {
	return Response{Message: message, Code: code, Data: data}
}

func failure(code int, message string) Response {
	return Response{Message: message, Code: code, Data: nil}
}

// writeError maps use-case failures onto the response envelope.
// Validation failures and business rule violations are client errors.
// Storage failures are internal errors even when stored data failed
// validation, and so is anything unclassified.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	var brv *errs.BusinessRuleViolationError

	switch {
	case errors.Is(err, errs.ErrPersistenceUnavailable), errors.Is(err, errs.ErrVersionIsInvalid):
		return internalError(c, logger, err)
	case errors.As(err, &brv):
		return c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, brv.Message))
	case errs.IsValidation(err):
		return c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, err.Error()))
	default:
		return internalError(c, logger, err)
	}
}

func internalError(c echo.Context, logger *slog.Logger, err error) error {
	logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError,
		failure(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)))
}
