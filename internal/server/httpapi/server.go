// Package httpapi exposes the HTTP/JSON surface of the Inner Flame backend:
// account creation and login, progress reads and updates, reflections, and
// the static realm catalog.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerflame/backend/internal/logging"
	"github.com/innerflame/backend/internal/server/services"
)

type Server struct {
	address     string
	logger      logging.Logger
	users       *services.UserService
	progress    *services.ProgressService
	reflections *services.ReflectionService
	engine      *gin.Engine
}

func NewServer(address string, l logging.Logger, us *services.UserService, ps *services.ProgressService, rs *services.ReflectionService) *Server {
	s := &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		users:       us,
		progress:    ps,
		reflections: rs,
	}

	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(s.logger), gin.Recovery())
	s.registerRoutes(engine)
	s.engine = engine

	return s
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.GET("/health", s.health)

	api := e.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)

		api.GET("/realms", s.listRealms)

		api.GET("/progress/:userId", s.getProgress)
		api.GET("/progress/:userId/summary", s.getProgressSummary)
		api.PUT("/progress/:userId/:realmId", s.updateProgress)

		api.GET("/reflections/:userId", s.getReflections)
		api.GET("/reflections/:userId/:realmId", s.getRealmReflections)
		api.POST("/reflections", s.createReflection)
	}
}

// Router returns the configured engine, primarily for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
