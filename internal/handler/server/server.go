package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/handler"
	"github.com/bagdasarian/team-attendance/internal/logging"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     logging.Logger
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, log logging.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		log:     log,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      logRequests(mux, log),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Handler нужен тестам, чтобы гонять запросы через httptest без сети
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Info(context.Background(), "server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info(ctx, "shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
