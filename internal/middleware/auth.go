package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

const (
	TokenCookie = "token"

	ctxIdentity = "identity"
	ctxRole     = "role"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Auth verifies the session token from the cookie or a bearer header and stores
// the caller's identity in the context.
func Auth(p TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, _ := c.Cookie(TokenCookie)
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		claims, err := p.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		c.Set(ctxIdentity, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

func RequireRole(roles ...string) ginext.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *ginext.Context) {
		if _, ok := allowed[Role(c)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}

// Identity returns the verified caller identity, or "" when Auth did not run.
func Identity(c *ginext.Context) string {
	v, _ := c.Get(ctxIdentity)
	s, _ := v.(string)
	return s
}

func Role(c *ginext.Context) string {
	v, _ := c.Get(ctxRole)
	s, _ := v.(string)
	return s
}
