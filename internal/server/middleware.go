package server

import (
	"log/slog"
	"net/http"
	"time"

	"clinic/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID propagates the caller's request id or generates one.
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		log.Info("request completed",
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String(requestIDKey, ctx.GetString(requestIDKey)),
		)
	}
}

func corsMiddleware(c config.CORSConfig) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(c.AllowOrigins) == 0 || slices.Contains(c.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowOrigins
	}
	cfg.AllowMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}

	return cors.New(cfg)
}
