package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/guardiao/gestao/internal/auth"
	"github.com/guardiao/gestao/internal/config"
	"github.com/guardiao/gestao/internal/metrics"
)

// Server is the HTTP boundary. Handlers are stateless: every request gets
// its own store call with its own timeout, nothing is held across requests.
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *sql.DB
	tokens *auth.TokenManager
	srv    *http.Server
}

func New(cfg *config.Config, log *zap.Logger, database *sql.DB, tokens *auth.TokenManager) *Server {
	s := &Server{cfg: cfg, log: log, db: database, tokens: tokens}

	r := chi.NewRouter()
	r.Use(s.cors)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/ping", s.handlePing)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", metrics.Handler())
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAuth)

		pr.Post("/auth/register", s.handleRegister)

		pr.Get("/employees", s.handleListEmployees)
		pr.Get("/employees/summary", s.handleSummary)
		pr.Get("/employees/search", s.handleSearchEmployees)
		pr.Get("/employees/{id}", s.handleGetEmployee)
		pr.Post("/employees", s.handleCreateEmployee)
		pr.Put("/employees/{id}", s.handleUpdateEmployee)
		pr.Delete("/employees/{id}", s.handleDeleteEmployee)

		pr.Post("/evaluations", s.handleApplyEvaluation)
		pr.Get("/evaluations/employee/{id}", s.handleEmployeeEvaluations)
		pr.Post("/adminrecords", s.handleCreateAdminRecord)
		pr.Get("/adminrecords/employee/{id}", s.handleEmployeeAdminRecords)

		pr.Get("/reports/evaluations", s.handleEvaluationReport)
		pr.Get("/reports/evaluations/export", s.handleEvaluationReportExport)
	})

	s.srv = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Start serves in the background and shuts down cleanly when ctx is done.
func (s *Server) Start(ctx context.Context) {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("http server", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shCtx)
	}()
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{OK: true, Time: time.Now().UTC()})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
	defer cancel()
	t0 := time.Now()
	if err := s.db.PingContext(ctx); err != nil {
		http.Error(w, "db not ok: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	metrics.ObserveDBPing(time.Since(t0))
	_, _ = w.Write([]byte("ok"))
}
