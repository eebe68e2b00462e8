package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "goggles_shop/internal/application/cart"
)

// SessionCookie names the browser cookie carrying the opaque cart token.
const SessionCookie = "cart_session"

const sessionMaxAge = 7 * 24 * 60 * 60

// SessionID returns the caller's cart session token, or "" when the browser
// has never touched a cart.
func SessionID(c *gin.Context) string {
	v, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return v
}

// EnsureSessionID returns the caller's cart session token, minting and setting
// a fresh one when none exists yet.
func EnsureSessionID(c *gin.Context) string {
	if v := SessionID(c); v != "" {
		return v
	}
	v := cartapp.NewSessionID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, v, sessionMaxAge, "/", "", false, true)
	return v
}

// ClearSessionID drops the cart token so the next cart interaction mints a new
// session. Called after a successful checkout.
func ClearSessionID(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
