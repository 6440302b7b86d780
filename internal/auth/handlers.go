package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"github.com/rs/zerolog/log"

	"github.com/jdkim-dev/boardgo/internal/config"
	"github.com/jdkim-dev/boardgo/internal/token"
)

// HandleLoginPage serves a minimal login page. No template engine: HTML
// rendering is out of scope and this page only needs one link.
func HandleLoginPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, `<html><body><h1>Sign in</h1><a href="/auth/google">Continue with Google</a></body></html>`)
}

// HandleLogin initiates the Google OAuth flow
func HandleLogin(c *gin.Context) {
	// Gothic requires the "provider" query parameter
	q := c.Request.URL.Query()
	q.Add("provider", "google")
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// HandleCallback completes the OAuth flow: the provider handshake yields a
// normalized profile, the provisioner resolves it to a local user, and a
// fresh session token is attached to the response as a cookie.
func HandleCallback(cfg *config.Config, provisioner *Provisioner, codec *token.Codec, rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			log.Warn().Err(err).Msg("oauth handshake failed")
			c.Redirect(http.StatusFound, "/login?error=auth_failed")
			return
		}

		profile := Profile{
			Provider:  gothUser.Provider,
			SubjectID: gothUser.UserID,
			Email:     gothUser.Email,
			Name:      gothUser.Name,
		}

		login, err := provisioner.Provision(c.Request.Context(), profile)
		if err != nil {
			if errors.Is(err, ErrUnknownProvider) {
				log.Warn().Str("provider", profile.Provider).Msg("rejected login from unknown provider")
				c.Redirect(http.StatusFound, "/login?error=auth_failed")
				return
			}
			log.Error().Err(err).Msg("user provisioning failed")
			c.String(http.StatusInternalServerError, "login failed")
			return
		}

		jwt, err := codec.Issue(login.UserID, login.Username, login.Email, login.Role)
		if err != nil {
			log.Error().Err(err).Msg("failed to issue session token")
			c.String(http.StatusInternalServerError, "login failed")
			return
		}

		// Not HttpOnly: the frontend reads the token to attach it as a
		// bearer header on API calls. Lifetime matches the token TTL.
		c.SetCookie(CookieName, jwt, int(codec.TTL().Seconds()), "/", "", cfg.Deployed(), false)

		if rec != nil {
			rec.RecordLogin()
		}
		log.Info().Uint("user_id", login.UserID).Str("username", login.Username).Msg("user authenticated")
		c.Redirect(http.StatusFound, "/")
	}
}

// HandleLogout expires the session cookie and returns to the login page.
func HandleLogout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(CookieName, "", -1, "/", "", cfg.Deployed(), false)
		c.Redirect(http.StatusFound, "/login")
	}
}

// HandleWhoAmI dumps the current principal, or its absence. The route runs
// through the gate but not RequireAuth, so it is reachable either way.
func HandleWhoAmI(c *gin.Context) {
	p, ok := PrincipalFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user_id":       p.UserID,
		"username":      p.Username,
		"role":          p.Role,
	})
}
