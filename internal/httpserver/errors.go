package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AyaAid/Stayabucks/internal/service"
	middleware "github.com/AyaAid/Stayabucks/pkg/middleware/auth"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, service.ErrDrinkNotFound):
		return http.StatusNotFound, "drink not found"
	case errors.Is(err, service.ErrSupplementNotFound):
		return http.StatusNotFound, "supplement not found"
	case errors.Is(err, service.ErrCreatedDrinkNotFound):
		return http.StatusNotFound, "created drink not found"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrSearchUnavailable):
		return http.StatusServiceUnavailable, "search is not configured"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// fail logs err under event and turns it into the matching HTTP error.
func fail(l *slog.Logger, event string, err error) error {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", msg, "error", err)
	} else {
		l.Warn(event, "status", status, "reason", msg, "error", err)
	}
	return echo.NewHTTPError(status, msg)
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}

// authorizeUser lets a request act for userID when auth is off, when the token
// subject is that user, or when the caller is an admin.
func authorizeUser(c echo.Context, userID uint) error {
	v := c.Get(middleware.ContextUserID)
	if v == nil {
		return nil
	}
	if role, _ := c.Get(middleware.ContextRole).(string); role == "admin" {
		return nil
	}
	if subject, ok := v.(uint); ok && subject == userID {
		return nil
	}
	return fmt.Errorf("user %d: %w", userID, service.ErrForbidden)
}
