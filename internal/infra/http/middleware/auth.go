package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/andrefarias-dev/briefing-backend/internal/infra/integration/supabase"
)

type ctxKey string

const (
	ctxKeyToken  ctxKey = "session_token"
	ctxKeyUserID ctxKey = "session_user_id"
)

// AuthVerifier checa a sessão no provedor. Na prática é o AuthClient
// do Supabase; nos testes, um mock.
type AuthVerifier interface {
	GetUser(ctx context.Context, token string) (*supabase.User, error)
}

// RequireSession é o portão das rotas do admin: extrai o bearer token e
// valida contra o provedor antes de qualquer acesso a dado. Sessão ausente
// ou revogada responde 401 com a dica de redirect: não é erro, é volta
// pro login.
func RequireSession(auth AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				RedirectToLogin(w)
				return
			}

			user, err := auth.GetUser(r.Context(), token)
			if err != nil {
				RedirectToLogin(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyToken, token)
			ctx = context.WithValue(ctx, ctxKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RedirectToLogin é a resposta padrão de sessão ausente.
func RedirectToLogin(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    "sessão ausente ou expirada",
		"redirect": "/admin/login",
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// TokenFromContext devolve o token daquela requisição. O Board consome
// via SessionSource, sempre na hora do uso.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyToken).(string)
	return token
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}
