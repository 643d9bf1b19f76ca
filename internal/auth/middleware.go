package auth

import (
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
)

// AccountResolver resolves a token subject to a live account. A (nil, nil)
// return means the account does not exist or the ID is malformed.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, id string) (*model.User, error)
}

// unauthorized is the single response body for every authentication failure.
// Missing header, forged signature, expired token and a deleted subject are
// indistinguishable to the caller.
func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "invalid or missing token",
		Code:  "INVALID_TOKEN",
	})
}

// TokenMiddleware extracts the bearer token from the Authorization header and
// verifies it. Verified claims land in the context under "user" for
// LoadIdentity to consume.
func TokenMiddleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.Validate(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized()
		},
	})
}

// LoadIdentity turns verified claims into an Identity by re-checking the
// subject against the credential store. A valid signature alone is not
// enough: an account deleted after issuance fails authentication here.
func LoadIdentity(resolver AccountResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthorized()
			}

			account, err := resolver.ResolveAccount(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "failed to resolve account",
					Code:  "INTERNAL_ERROR",
				})
			}
			if account == nil {
				return unauthorized()
			}

			SetIdentity(c, &Identity{
				ID:    account.ID.String(),
				Email: account.Email,
				Role:  account.Role,
				Name:  account.Name,
			})
			return next(c)
		}
	}
}
