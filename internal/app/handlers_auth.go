package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/guardiao/gestao/internal/auth"
	"github.com/guardiao/gestao/internal/ctxutil"
	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/models"
	"go.uber.org/zap"
)

// handleLogin never tells the caller whether the email or the password was
// the wrong half.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	user, err := db.GetAuthUserByEmail(ctx, s.db, req.Email)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	if err != nil {
		s.fail(w, err, "")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	token, err := s.tokens.Issue(user, time.Now())
	if err != nil {
		s.fail(w, err, "")
		return
	}
	s.log.Info("login", zap.String("email", user.Email))
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleRegister is only reachable through requireAuth.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}
	if req.Name == "" {
		req.Name = req.Email
	}
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(models.RoleAdmin)}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.fail(w, err, "")
		return
	}

	ctx, cancel := ctxutil.WithDBTimeout(r.Context())
	defer cancel()

	id, err := db.CreateAuthUser(ctx, s.db, req.Email, req.Name, hash, roles)
	if errors.Is(err, db.ErrConflict) {
		writeError(w, http.StatusConflict, "usuário já existe")
		return
	}
	if err != nil {
		s.fail(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
