package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"clinic/internal/config"
	"clinic/pkg/sl"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	log    *slog.Logger
	health func(ctx context.Context) error
}

type Option func(*Server)

// WithHealthCheck makes GET /health report 503 while check fails.
func WithHealthCheck(check func(ctx context.Context) error) Option {
	return func(s *Server) {
		s.health = check
	}
}

func New(cfg *config.Config, log *slog.Logger, opts ...Option) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(log),
		corsMiddleware(cfg.CORS),
	)

	s := &Server{
		router: router,
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	router.GET("/health", s.healthHandler())

	return s
}

// Router is where services mount their handlers.
func (s *Server) Router() gin.IRouter {
	return s.router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	serv := http.Server{
		Addr:    s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("server is listening", slog.String("port", s.cfg.Port))

	select {
	case err := <-errCh:
		return fmt.Errorf("server.Run(): %w", err)
	case <-ctx.Done():
	}

	s.log.Info("start to finish server gracefully...")

	ctxTimeout, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := serv.Shutdown(ctxTimeout); err != nil {
		s.log.Error("failed to shutdown server gracefully", sl.Error(err))
		return fmt.Errorf("server.Run(): %w", err)
	}

	s.log.Info("finished server gracefully")
	return nil
}

func (s *Server) healthHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if s.health != nil {
			if err := s.health(ctx.Request.Context()); err != nil {
				s.log.Error("health check failed", sl.Error(err))
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}

		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

