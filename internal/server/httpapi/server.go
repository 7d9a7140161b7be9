// Package httpapi serves the session endpoints (register, login, me,
// logout) over HTTP using gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the subset of services.UserService used by the handlers.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error)
	Authenticate(ctx context.Context, email, password string) (*models.PublicUser, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (*auth.Claims, error)
	TTL() time.Duration
}

// Pinger reports store reachability for /health. Optional.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address     string
	tlsEnabled  bool
	tlsCertFile string
	tlsKeyFile  string

	logger  logging.Logger
	users   UserService
	tokens  TokenService
	metrics *metrics.Metrics
	pinger  Pinger

	cookieDomain   string
	allowedOrigins []string

	router *gin.Engine
}

func NewHTTPServer(c *config.Config, l logging.Logger, us UserService, ts TokenService, m *metrics.Metrics, p Pinger) *HTTPServer {
	s := &HTTPServer{
		address:        c.EndpointAddrHTTP,
		tlsEnabled:     c.TLSEnabled(),
		tlsCertFile:    c.TLSCertFile,
		tlsKeyFile:     c.TLSKeyFile,
		logger:         l.With("module", "http_server"),
		users:          us,
		tokens:         ts,
		metrics:        m,
		pinger:         p,
		cookieDomain:   c.AppDomain,
		allowedOrigins: c.AllowedOrigins,
	}
	s.router = s.setupRouter()
	return s
}

// Router exposes the configured engine, mostly for tests.
func (s *HTTPServer) Router() http.Handler {
	return s.router
}

func (s *HTTPServer) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecoveryWithWriter(nil, s.recoverPanic), s.accessLog())

	if len(s.allowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = s.allowedOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowHeaders = []string{
			"Origin",
			"Content-Type",
			"Accept",
		}
		router.Use(cors.New(corsConfig))
	}

	router.GET("/health", s.Health)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	router.POST("/register", s.Register)
	router.POST("/login", s.Login)
	router.GET("/me", s.Me)
	router.POST("/logout", s.Logout)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown error", "error", err)
		}
	}()

	var err error
	if s.tlsEnabled {
		s.logger.Info(ctx, "Starting HTTPS server", "address", s.address)
		err = srv.ListenAndServeTLS(s.tlsCertFile, s.tlsKeyFile)
	} else {
		s.logger.Warn(ctx, "Starting HTTP server without TLS; secure session cookies will not be sent back by browsers", "address", s.address)
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
