package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrefarias-dev/briefing-backend/internal/infra/http/middleware"
	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError traduz a taxonomia de erros do usecase pra borda HTTP:
// validação é 422, sessão ausente é 401 com redirect, falha remota é 502.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrSemSessao) {
		middleware.RedirectToLogin(w)
		return
	}

	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": de.Message,
			"code":  de.Code,
		})
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": te.Message,
			"code":  te.Code,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
