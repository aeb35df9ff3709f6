package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/guardiao/gestao/internal/ctxutil"
	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/models"
)

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	list, err := db.ListEmployees(ctx, s.db)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	if list == nil {
		list = []models.Employee{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSearchEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	list, err := db.SearchEmployees(ctx, s.db, r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, err, "")
		return
	}
	if list == nil {
		list = []models.Employee{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "colaborador não encontrado")
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	emp, err := db.GetEmployee(ctx, s.db, id)
	if err != nil {
		s.fail(w, err, "colaborador não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	admission, ok := parseAdmission(w, req.Admissao)
	if !ok {
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	id, err := db.InsertEmployee(ctx, s.db, models.NewEmployee{
		Name:      req.Nome,
		CPF:       req.CPF,
		Post:      req.Posto,
		Admission: admission,
		Score:     req.Score,
	})
	if err != nil {
		s.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "colaborador não encontrado")
		return
	}
	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	admission, ok := parseAdmission(w, req.Admissao)
	if !ok {
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	err := db.UpdateEmployee(ctx, s.db, id, models.UpdateEmployee{
		Name:      req.Nome,
		CPF:       req.CPF,
		Post:      req.Posto,
		Admission: admission,
	})
	if err != nil {
		s.fail(w, err, "colaborador não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "colaborador não encontrado")
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	if err := db.DeleteEmployee(ctx, s.db, id); err != nil {
		s.fail(w, err, "colaborador não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	sum, err := db.Summary(ctx, s.db)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func parseAdmission(w http.ResponseWriter, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "data de admissão inválida")
		return nil, false
	}
	return &t, true
}
