package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
)

const identityKey = "identity"

// Identity is the request-scoped projection of a verified token plus a fresh
// account lookup. It is attached once by LoadIdentity and read-only afterwards.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// SetIdentity attaches the identity to the current request.
func SetIdentity(c echo.Context, ident *Identity) {
	c.Set(identityKey, ident)
}

// IdentityFrom returns the identity attached by LoadIdentity, if any.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	ident, ok := c.Get(identityKey).(*Identity)
	return ident, ok
}

// RequireRoles allows a request iff its identity's role is a member of the
// given set. An empty set allows unconditionally, without requiring an
// identity at all. Roles match exactly; there is no hierarchy.
//
// A deny is a 403, distinct from the 401 produced by the verification
// middleware: the caller is known, but not permitted.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(roles) == 0 {
				return next(c)
			}

			ident, ok := IdentityFrom(c)
			if !ok {
				// Defensive: only reachable if the verification chain was
				// not composed in front of this guard.
				return forbidden()
			}

			for _, role := range roles {
				if ident.Role == role {
					return next(c)
				}
			}
			return forbidden()
		}
	}
}

func forbidden() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
		Error: "insufficient role",
		Code:  "FORBIDDEN",
	})
}
