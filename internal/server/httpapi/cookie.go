package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, token, int(ttl.Seconds()), "/", s.cookieDomain, true, true)
}

// clearSessionCookie overwrites the cookie with an empty value. A negative
// max age is written as Max-Age=0.
func (s *HTTPServer) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, "", -1, "/", s.cookieDomain, true, true)
}
