package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a token ID has been revoked by logout.
// A nil checker disables the revocation check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer JWT and injects claims into context. Claims set:
// id, username, role, jti, exp (as time.Time).
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			jti, _ := claims["jti"].(string)
			if revoked != nil && jti != "" {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), jti)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "revocation check failed")
				}
				if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("id", claims["id"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("jti", jti)
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set("exp", exp.Time)
			} else {
				c.Set("exp", time.Time{})
			}

			return next(c)
		}
	}
}
