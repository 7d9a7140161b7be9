package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgLoginFailed      = "Incorrect username or password"
	msgNotAuthenticated = "Not authenticated"
	msgTokenExpired     = "Token expired"
	msgInvalidToken     = "Invalid token"
	msgInternal         = "Internal server error"

	msgPasswordsDoNotMatch = "Passwords do not match"
	msgWeakPassword        = "Password is not strong enough"
	msgEmailRegistered     = "Email already registered"
)

// loginForm mirrors the OAuth2 password form: the email travels as username.
type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// registrationDetail maps registration errors to their user-facing text.
func registrationDetail(err error) string {
	switch {
	case errors.Is(err, common.ErrPasswordsDoNotMatch):
		return msgPasswordsDoNotMatch
	case errors.Is(err, common.ErrWeakPassword):
		return msgWeakPassword
	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		return msgEmailRegistered
	default:
		return err.Error()
	}
}

// Register creates a user. It never starts a session.
func (s *HTTPServer) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.RecordRegistration(metrics.StatusInvalid)
		detail(c, http.StatusBadRequest, "Invalid registration request")
		return
	}

	user, err := s.users.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			s.metrics.RecordRegistration(metrics.StatusConflict)
			detail(c, http.StatusBadRequest, registrationDetail(err))
		case errors.Is(err, common.ErrorValidation):
			s.metrics.RecordRegistration(metrics.StatusInvalid)
			detail(c, http.StatusBadRequest, registrationDetail(err))
		default:
			s.metrics.RecordRegistration(metrics.StatusError)
			s.logger.Error(ctx, "registration failed", "request", req, "error", err)
			detail(c, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	s.metrics.RecordRegistration(metrics.StatusSuccess)
	s.logger.Info(ctx, "user registered", "email", user.Email)
	c.JSON(http.StatusOK, user)
}

// Login checks credentials and sets the session cookie.
func (s *HTTPServer) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var form loginForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		s.metrics.RecordLogin(metrics.StatusInvalid)
		detail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.users.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.metrics.RecordLogin(metrics.StatusRejected)
			c.Header("WWW-Authenticate", "Bearer")
			detail(c, http.StatusUnauthorized, msgLoginFailed)
			return
		}
		s.metrics.RecordLogin(metrics.StatusError)
		s.logger.Error(ctx, "login failed", "error", err)
		detail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	ttl := s.tokens.TTL()
	token, err := s.tokens.Issue(user.Email, ttl)
	if err != nil {
		s.metrics.RecordLogin(metrics.StatusError)
		s.logger.Error(ctx, "token issue failed", "error", err)
		detail(c, http.StatusInternalServerError, msgInternal)
		return
	}

	s.setSessionCookie(c, token, ttl)
	s.metrics.RecordLogin(metrics.StatusSuccess)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Me reports the subject of a valid session cookie.
func (s *HTTPServer) Me(c *gin.Context) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil || token == "" {
		s.metrics.RecordSessionCheck(metrics.ResultMissing)
		detail(c, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			s.metrics.RecordSessionCheck(metrics.ResultExpired)
			detail(c, http.StatusUnauthorized, msgTokenExpired)
			return
		}
		s.metrics.RecordSessionCheck(metrics.ResultInvalid)
		detail(c, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	s.metrics.RecordSessionCheck(metrics.ResultValid)
	c.JSON(http.StatusOK, gin.H{
		"username": claims.Subject,
		"message":  "User is logged in",
	})
}

// Logout clears the cookie whatever the current session state. The token
// itself stays valid until it expires.
func (s *HTTPServer) Logout(c *gin.Context) {
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *HTTPServer) Health(c *gin.Context) {
	if s.pinger != nil {
		if err := s.pinger.PingContext(c.Request.Context()); err != nil {
			s.logger.Warn(c.Request.Context(), "health check: store unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
