package middleware

// identity.go holds the identity helper shared by the cache and rate-limit
// middleware.  It reads the user id that JWTAuth stores in the Echo context
// and returns it as a string suitable for Redis key composition.  "anon" is
// returned for unauthenticated requests.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id as a string, or "anon"
// when no identity is attached to the request.  JWTAuth stores the id as a
// uint64; a string value is also accepted for flexibility in tests.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case uint64:
		if v > 0 {
			return strconv.FormatUint(v, 10)
		}
	case string:
		if v != "" {
			return v
		}
	}
	return "anon"
}
