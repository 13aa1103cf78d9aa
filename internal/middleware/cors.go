package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// CORS allows credentialed requests from the listed origins. "*" reflects any origin.
func CORS(allowOrigins []string) ginext.HandlerFunc {
	allowAll := len(allowOrigins) == 1 && allowOrigins[0] == "*"

	return func(c *ginext.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || originAllowed(origin, allowOrigins)) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-Id, X-Staff-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, allow []string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(origin)) {
			return true
		}
	}
	return false
}
