package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With"
	corsAllowMethods = "POST, OPTIONS, GET, PUT, DELETE, PATCH"
)

// wildcardOrigin matches a single-level subdomain pattern such as
// "https://*.horizon-app.pages.dev". Only the leftmost label may vary.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin parses a pattern of the form "<scheme>://*.<domain>".
// It returns nil for exact origins and for malformed patterns (bare "*",
// multiple wildcards, wildcard not in the leftmost label, or a suffix with
// fewer than two labels).
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	rest := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(rest, "*.") {
		return nil
	}

	suffix := rest[1:] // keep the leading dot
	if strings.Contains(suffix, "*") {
		return nil
	}
	// The suffix needs at least two labels ("*.com" is too broad).
	if strings.Count(suffix, ".") < 2 {
		return nil
	}

	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether an Origin header value fits the pattern. The
// variable part must be exactly one non-empty label.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	label := strings.TrimSuffix(host, w.suffix)
	return label != "" && !strings.Contains(label, ".")
}

// CORS middleware to handle cross-origin requests.
// Reads CORS_ALLOWED_ORIGINS (comma-separated; entries may be exact origins
// or single-level wildcards like "https://*.horizon-app.pages.dev").
// If not set, defaults to "*" (allow all origins).
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exact []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, part := range strings.Split(allowedOriginsStr, ",") {
			pattern := strings.TrimSpace(part)
			if w := parseWildcardOrigin(pattern); w != nil {
				wildcards = append(wildcards, w)
			} else if pattern != "" {
				exact = append(exact, pattern)
			}
		}
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exact {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == "OPTIONS" {
			// Disallowed origins get a hard preflight rejection.
			c.AbortWithStatus(403)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Writer.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
