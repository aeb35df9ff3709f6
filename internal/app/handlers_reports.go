package app

import (
	"net/http"
	"time"

	"github.com/guardiao/gestao/internal/ctxutil"
	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/export"
	"github.com/guardiao/gestao/internal/models"
)

func (s *Server) handleEvaluationReport(w http.ResponseWriter, r *http.Request) {
	filter, ok := reportFilterFromQuery(w, r)
	if !ok {
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	res, err := db.EvaluationReport(ctx, s.db, filter)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEvaluationReportExport(w http.ResponseWriter, r *http.Request) {
	filter, ok := reportFilterFromQuery(w, r)
	if !ok {
		return
	}
	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	res, err := db.EvaluationReport(ctx, s.db, filter)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	f, err := export.BuildReportWorkbook(res)
	if err != nil {
		s.fail(w, err, "")
		return
	}
	defer f.Close()

	name := export.ReportFilename(time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := f.WriteTo(w); err != nil {
		s.log.Warn("report export write aborted")
	}
}

// reportFilterFromQuery reads start/end/posto/tipo. Dates come as
// YYYY-MM-DD; the end date covers its whole day in the query.
func reportFilterFromQuery(w http.ResponseWriter, r *http.Request) (models.ReportFilter, bool) {
	q := r.URL.Query()
	var f models.ReportFilter

	start, ok := parseDateParam(w, q.Get("start"))
	if !ok {
		return f, false
	}
	end, ok := parseDateParam(w, q.Get("end"))
	if !ok {
		return f, false
	}
	f.Start = start
	f.End = end
	if v := q.Get("posto"); v != "" {
		f.Post = &v
	}
	if v := q.Get("tipo"); v != "" {
		f.Category = &v
	}
	return f, true
}

func parseDateParam(w http.ResponseWriter, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, raw); err != nil {
			writeError(w, http.StatusBadRequest, "data inválida")
			return nil, false
		}
	}
	return &t, true
}
