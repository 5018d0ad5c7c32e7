package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anik404/memory-lane/backend/internal/apperror"
)

// HTTPErrorHandler maps application errors to JSON error responses of the
// shape {"error": string}. Anything outside the taxonomy becomes a generic
// 500, logged server-side with details.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperror.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
		switch {
		case errors.Is(appErr, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(appErr, apperror.ErrUnauthenticated), errors.Is(appErr, apperror.ErrInvalidCredential):
			status = http.StatusUnauthorized
		case errors.Is(appErr, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(appErr, apperror.ErrConflict):
			status = http.StatusConflict
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if status == http.StatusInternalServerError {
		log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if jsonErr := c.JSON(status, echo.Map{"error": message}); jsonErr != nil {
		log.Printf("failed to write error response: %v", jsonErr)
	}
}
