package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/AyaAid/Stayabucks/pkg/tokens"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"

	AccessCookie = "accessToken"
)

type RequireAuthMiddleware struct {
	JWTSecret []byte
}

func NewRequireAuthMiddleware(secret []byte) *RequireAuthMiddleware {
	return &RequireAuthMiddleware{JWTSecret: secret}
}

func (m *RequireAuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := accessToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token expired")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, claims.Role)
		return next(c)
	}
}

// accessToken prefers the bearer header and falls back to the accessToken cookie.
func accessToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if ck, err := c.Cookie(AccessCookie); err == nil {
		return ck.Value
	}
	return ""
}
