package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const userKey = "user"

// Authenticate stores the claims of a valid bearer token in the echo context.
// It never rejects a request; EnsureAdmin does that.
func Authenticate(s *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
				if claims, err := s.Parse(token); err == nil {
					c.Set(userKey, claims)
				}
			}
			return next(c)
		}
	}
}

// EnsureAdmin fails with ErrUnauthorized unless the caller is an admin.
func EnsureAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := User(c); !ok || !claims.IsAdmin {
			return ErrUnauthorized
		}
		return next(c)
	}
}

// User returns the caller's claims, if any.
func User(c echo.Context) (Claims, bool) {
	claims, ok := c.Get(userKey).(Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
