// Package server exposes card resolver as a local JSON API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cardcut/config"
	"cardcut/layout"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodySize     = 1 << 20
)

type Server struct {
	cfg    *config.ServerConfig
	cache  *layout.Cache
	engine *gin.Engine
	log    *zap.Logger
}

func New(cfg *config.ServerConfig, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:   cfg,
		cache: layout.NewCache(cfg.CacheSize),
		log:   log.Named("http"),
	}
	s.engine = gin.New()
	s.engine.Use(s.logRequests(), gin.CustomRecovery(s.recovered), limitBody(maxBodySize))
	s.registerRoutes(s.engine)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves API until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves API on listener until context is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(s.log),
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(sctx)
	}()

	s.log.Info("Serving", zap.Stringer("address", ln.Addr()))
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Strings("errors", c.Errors.Errors()),
		)
	}
}

// limitBody makes reading request body past n bytes fail, binding then
// reports bad request.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

func (s *Server) recovered(c *gin.Context, r any) {
	s.log.Error("Request ended with panic", zap.String("path", c.Request.URL.Path), zap.Any("panic", r))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
