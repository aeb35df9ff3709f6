package app

import (
	"net/http"

	"github.com/guardiao/gestao/internal/ctxutil"
	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/metrics"
	"github.com/guardiao/gestao/internal/models"
)

// handleApplyEvaluation runs the score ledger: one transaction appends the
// record and moves the score. Unknown categories apply a delta of zero but
// are still recorded.
func (s *Server) handleApplyEvaluation(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID <= 0 || req.Tipo == "" {
		writeError(w, http.StatusBadRequest, "dados inválidos")
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	delta, err := db.ApplyEvaluation(ctx, s.db, s.cfg.Deltas, req.EmployeeID, req.Tipo, req.Descricao)
	if err != nil {
		s.fail(w, err, "colaborador não encontrado")
		return
	}
	metrics.EvaluationsApplied.WithLabelValues(req.Tipo).Inc()
	writeJSON(w, http.StatusOK, deltaResponse{Delta: delta})
}

func (s *Server) handleEmployeeEvaluations(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "colaborador não encontrado")
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	list, err := db.ListEvaluationsByEmployee(ctx, s.db, id)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	if list == nil {
		list = []models.Evaluation{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateAdminRecord(w http.ResponseWriter, r *http.Request) {
	var req adminRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EmployeeID <= 0 {
		writeError(w, http.StatusBadRequest, "dados inválidos")
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	if err := db.InsertAdminRecord(ctx, s.db, req.EmployeeID, req.Tipo, req.Descricao); err != nil {
		s.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: req.EmployeeID})
}

func (s *Server) handleEmployeeAdminRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "colaborador não encontrado")
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	list, err := db.ListAdminRecordsByEmployee(ctx, s.db, id)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	if list == nil {
		list = []models.AdminRecord{}
	}
	writeJSON(w, http.StatusOK, list)
}
