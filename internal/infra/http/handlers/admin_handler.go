package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/http/middleware"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/integration/supabase"
	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

// AuthGateway é o pedaço do provedor de auth que o admin usa direto.
type AuthGateway interface {
	SignIn(ctx context.Context, email, password string) (*supabase.Session, error)
	SignOut(ctx context.Context, token string) error
}

// AdminHandler é o painel de leads: login/logout e o board por admin
// (lista, filtro, busca, expansão, mudança de status e remoção).
type AdminHandler struct {
	Auth  AuthGateway
	Store usecase.LeadStore

	mu     sync.Mutex
	boards map[string]*usecase.Board // por id de usuário
}

func NewAdminHandler(auth AuthGateway, store usecase.LeadStore) *AdminHandler {
	return &AdminHandler{
		Auth:   auth,
		Store:  store,
		boards: make(map[string]*usecase.Board),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin troca credenciais por uma sessão. Erro do provedor volta
// com a mensagem dele, palavra por palavra. É o que a tela de login mostra.
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	session, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// HandleLogout invalida a sessão no provedor e descarta o board em memória.
func (h *AdminHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	h.mu.Lock()
	delete(h.boards, middleware.UserIDFromContext(r.Context()))
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/admin/login"})
}

type boardView struct {
	Leads      []entity.Lead `json:"leads"`
	Total      int           `json:"total"`
	Filtered   int           `json:"filtered"`
	ExpandedID string        `json:"expanded_id,omitempty"`
}

func viewOf(b *usecase.Board) boardView {
	view := b.View()
	return boardView{
		Leads:      view,
		Total:      b.Total(),
		Filtered:   len(view),
		ExpandedID: b.ExpandedID(),
	}
}

// HandleListLeads devolve a visão filtrada. O primeiro acesso da sessão
// carrega do banco; depois é derivação pura sobre o snapshot.
func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	h.withBoard(w, r, func(ctx context.Context, b *usecase.Board) (any, error) {
		if status := r.URL.Query().Get("status"); status != "" {
			if err := b.SetFilter(status); err != nil {
				return nil, err
			}
		}
		b.SetSearch(r.URL.Query().Get("q"))

		if !b.Loaded() {
			if err := b.Refresh(ctx); err != nil {
				return nil, err
			}
		}
		return viewOf(b), nil
	})
}

// HandleRefresh força um novo fetch, igual ao botão "Atualizar".
func (h *AdminHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.withBoard(w, r, func(ctx context.Context, b *usecase.Board) (any, error) {
		if err := b.Refresh(ctx); err != nil {
			return nil, err
		}
		return viewOf(b), nil
	})
}

func (h *AdminHandler) HandleToggleExpand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.withBoard(w, r, func(ctx context.Context, b *usecase.Board) (any, error) {
		b.ToggleExpand(id)
		return map[string]string{"expanded_id": b.ExpandedID()}, nil
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	id := chi.URLParam(r, "id")
	h.withBoard(w, r, func(ctx context.Context, b *usecase.Board) (any, error) {
		if err := b.UpdateStatus(ctx, id, req.Status); err != nil {
			return nil, err
		}
		middleware.RecordStatusChange(req.Status)
		return viewOf(b), nil
	})
}

// HandleDelete exige confirm=true na query: a confirmação explícita do
// usuário vem antes de qualquer chamada remota.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "remoção exige confirmação explícita (confirm=true)",
		})
		return
	}

	id := chi.URLParam(r, "id")
	h.withBoard(w, r, func(ctx context.Context, b *usecase.Board) (any, error) {
		if err := b.Delete(ctx, id); err != nil {
			return nil, err
		}
		middleware.RecordLeadDeleted()
		return viewOf(b), nil
	})
}

// requestSession entrega o token da requisição corrente. O Board pede na
// hora de cada mutação; token revogado entre requisições morre aqui.
type requestSession struct {
	token string
}

func (s requestSession) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", usecase.ErrSemSessao
	}
	return s.token, nil
}

// withBoard resolve o board do admin logado, pendura a sessão da
// requisição nele e roda a operação sob lock.
func (h *AdminHandler) withBoard(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, b *usecase.Board) (any, error)) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		middleware.RedirectToLogin(w)
		return
	}

	session := requestSession{token: middleware.TokenFromContext(r.Context())}

	h.mu.Lock()
	b, ok := h.boards[userID]
	if !ok {
		b = usecase.NewBoard(h.Store, session)
		h.boards[userID] = b
	}
	b.Session = session

	body, err := fn(r.Context(), b)
	h.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}
