package preview

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/generation"
	"github.com/hyeonw/detailpage-client/internal/pkg/response"
	"go.uber.org/zap"
)

// Server serves the generated detail page on a local address so the result
// can be inspected in a browser. Read-only: it renders whatever the
// generation store currently holds.
type Server struct {
	httpServer *http.Server
	state      *generation.Store
	logger     *zap.Logger
}

func NewServer(addr string, state *generation.Store, logger *zap.Logger) *Server {
	s := &Server{
		state:  state,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(logger))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Snapshot()
	if snap.Status != entity.GenerationStatusCompleted || snap.HTMLContent == "" {
		response.Error(w, http.StatusNotFound, "no generated page available")
		return
	}

	response.HTML(w, http.StatusOK, snap.HTMLContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "healthy"})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks serving until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting preview server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
