package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jdkim-dev/boardgo/internal/token"
)

// CookieName is the cookie carrying the session token.
const CookieName = "jwt"

// publicPrefixes bypass the gate entirely: login page, OAuth entry and
// callback paths, static assets, health/metrics/debug endpoints.
var publicPrefixes = []string{
	"/login",
	"/auth",
	"/css",
	"/js",
	"/images",
	"/healthz",
	"/metrics",
	"/debug",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Recorder receives auth events for metrics. May be nil.
type Recorder interface {
	RecordAuthFailure()
	RecordLogin()
}

// Gate authenticates requests from a session token without ever terminating
// them. A verified token installs a Principal into the request context; any
// extraction or verification failure degrades to anonymous. Terminal
// accept/reject decisions belong to RequireAuth on the routes that need it.
func Gate(codec *token.Codec, rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		candidate := extractToken(c.Request)
		if candidate == "" {
			// no credential is not an error, just anonymous
			c.Next()
			return
		}

		claims, err := codec.Verify(candidate)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("token verification failed")
			if rec != nil {
				rec.RecordAuthFailure()
			}
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Warn().Err(err).Msg("token subject is not a user id")
			if rec != nil {
				rec.RecordAuthFailure()
			}
			c.Next()
			return
		}

		p := Principal{UserID: userID, Username: claims.Username, Role: claims.Role}
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// extractToken pulls the candidate token from the jwt cookie, falling back
// to a bearer Authorization header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}

	return ""
}

// RequireAuth is the authorization layer for protected routes: it rejects
// requests that reached it anonymous. API routes get a JSON 401; page routes
// are redirected to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c.Request.Context()); ok {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
