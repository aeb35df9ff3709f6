package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/guardiao/gestao/internal/db"
)

const genericErrMsg = "erro interno"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// fail maps store sentinels onto wire statuses. Anything unexpected becomes
// a 500 whose detail only leaks in dev mode.
func (s *Server) fail(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, db.ErrConflict):
		writeError(w, http.StatusConflict, "registro já existe")
	case errors.Is(err, db.ErrInvalidCPF):
		writeError(w, http.StatusBadRequest, "CPF inválido")
	case errors.Is(err, db.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "dados inválidos")
	default:
		s.captureInternal(err)
		msg := genericErrMsg
		if s.cfg.Dev() {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return false
	}
	return true
}
