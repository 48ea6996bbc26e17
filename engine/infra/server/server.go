package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/craftchat/craftchat/engine/chat"
	chatrouter "github.com/craftchat/craftchat/engine/chat/router"
	"github.com/craftchat/craftchat/engine/infra/monitoring"
	"github.com/craftchat/craftchat/engine/mcserver"
	mcrouter "github.com/craftchat/craftchat/engine/mcserver/router"
	"github.com/craftchat/craftchat/pkg/config"
	"github.com/craftchat/craftchat/pkg/logger"
	"github.com/craftchat/craftchat/web"
)

const (
	httpReadTimeout = 15 * time.Second
	// LLM turns can take a while; the write timeout has to outlive them.
	httpWriteTimeout = 120 * time.Second
	httpIdleTimeout  = 60 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// Server owns the gin engine and the process lifecycle of the HTTP
// listener.
type Server struct {
	cfg    *config.Config
	log    logger.Logger
	router *gin.Engine
}

// New assembles the full HTTP surface: chat routes, admin routes, static
// assets and the metrics endpoint.
func New(
	cfg *config.Config,
	log logger.Logger,
	registry *mcserver.Registry,
	orchestrator *chat.Orchestrator,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestContext(log))
	router.Use(monitoring.Middleware())
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/metrics", monitoring.Handler())

	chatrouter.RegisterRoutes(router, registry, orchestrator)
	mcrouter.RegisterRoutes(router, registry)

	return &Server{cfg: cfg, log: log, router: router}
}

// Router exposes the assembled engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// requestContext attaches the process logger to every request context so
// handlers and use cases can pick it up with logger.FromContext.
func requestContext(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.ContextWithLogger(c.Request.Context(), log)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
