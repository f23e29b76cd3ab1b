package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	user_client "localbuzz-feed-service/internal/clients/user"
	"localbuzz-feed-service/internal/delivery/http/handlers"
	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
)

type Server struct {
	handler *handlers.Handler
	users   user_client.Client
	metrics metrics.Provider
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	handler *handlers.Handler,
	users user_client.Client,
	metricsProvider metrics.Provider,
	address string,
	port int,
	log *logger.Logger,
) *Server {
	return &Server{
		handler: handler,
		users:   users,
		metrics: metricsProvider,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(s.log),
		middleware.Metrics(s.metrics),
		middleware.Recovery(s.log),
	)

	s.handler.RegisterRoutes(engine, middleware.Auth(s.users, s.log))

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
