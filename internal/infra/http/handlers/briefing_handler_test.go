package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

func briefingRouter(store usecase.LeadStore) *chi.Mux {
	h := NewBriefingHandler(usecase.NewSubmitBriefingUseCase(store, nil, nil))

	r := chi.NewRouter()
	r.Get("/briefing/catalog", h.HandleCatalog)
	r.Post("/briefing", h.HandleSubmit)
	r.Route("/briefing/sessions", func(r chi.Router) {
		r.Post("/", h.HandleCreateSession)
		r.Get("/{id}", h.HandleGetSession)
		r.Patch("/{id}", h.HandleUpdateField)
		r.Post("/{id}/next", h.HandleNext)
		r.Post("/{id}/back", h.HandleBack)
		r.Post("/{id}/submit", h.HandleSessionSubmit)
	})
	return r
}

type wizardStateResp struct {
	ID         string                `json:"id"`
	Step       int                   `json:"step"`
	Submitting bool                  `json:"submitting"`
	Submitted  bool                  `json:"submitted"`
	Form       usecase.BriefingInput `json:"form"`
}

func post(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func patchField(router http.Handler, sessionID, field, value string, toggle bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(map[string]any{"field": field, "value": value, "toggle": toggle})
	req := httptest.NewRequest(http.MethodPatch, "/briefing/sessions/"+sessionID, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func novaSessao(t *testing.T, router http.Handler) string {
	t.Helper()
	w := post(router, "/briefing/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var state wizardStateResp
	json.NewDecoder(w.Body).Decode(&state)
	require.NotEmpty(t, state.ID)
	require.Equal(t, 1, state.Step)
	return state.ID
}

func TestSessaoNextBloqueadoSemCamposObrigatorios(t *testing.T) {
	router := briefingRouter(new(MockLeadStore))
	id := novaSessao(t, router)

	w := post(router, "/briefing/sessions/"+id+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Continua no passo 1.
	req := httptest.NewRequest(http.MethodGet, "/briefing/sessions/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var state wizardStateResp
	json.NewDecoder(rec.Body).Decode(&state)
	assert.Equal(t, 1, state.Step)
}

func TestSessaoFluxoCompletoAteOEnvio(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Status == entity.StatusNovo && l.NomeCompleto == "Ana Souza"
	})).Return(nil).Once()

	router := briefingRouter(store)
	id := novaSessao(t, router)

	patchField(router, id, "nomeCompleto", "Ana Souza", false)
	patchField(router, id, "email", "ana@exemplo.com", false)
	patchField(router, id, "whatsapp", "(21) 99999-9999", false)
	require.Equal(t, http.StatusOK, post(router, "/briefing/sessions/"+id+"/next", nil).Code)

	patchField(router, id, "tipoProjeto", "landing-page", false)
	patchField(router, id, "descricaoCurta", "página de captação", false)
	patchField(router, id, "problemaResolver", "sem presença digital", false)
	require.Equal(t, http.StatusOK, post(router, "/briefing/sessions/"+id+"/next", nil).Code)

	patchField(router, id, "funcionalidades", "Formulário de contato", true)
	require.Equal(t, http.StatusOK, post(router, "/briefing/sessions/"+id+"/next", nil).Code)

	patchField(router, id, "prazoDesejado", "1-mes", false)
	patchField(router, id, "orcamentoEstimado", "2k-5k", false)
	require.Equal(t, http.StatusOK, post(router, "/briefing/sessions/"+id+"/next", nil).Code)

	w := post(router, "/briefing/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state wizardStateResp
	json.NewDecoder(w.Body).Decode(&state)
	assert.True(t, state.Submitted)
	assert.Equal(t, 5, state.Step)

	store.AssertExpectations(t)
}

func TestSessaoBackNaoValida(t *testing.T) {
	router := briefingRouter(new(MockLeadStore))
	id := novaSessao(t, router)

	// Back no passo 1 fica no 1, sem erro.
	w := post(router, "/briefing/sessions/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state wizardStateResp
	json.NewDecoder(w.Body).Decode(&state)
	assert.Equal(t, 1, state.Step)
}

func TestSessaoToggleViaPatch(t *testing.T) {
	router := briefingRouter(new(MockLeadStore))
	id := novaSessao(t, router)

	patchField(router, id, "funcionalidades", "Blog / Notícias", true)
	w := patchField(router, id, "funcionalidades", "Blog / Notícias", true)

	require.Equal(t, http.StatusOK, w.Code)
	var state wizardStateResp
	json.NewDecoder(w.Body).Decode(&state)
	assert.Empty(t, state.Form.Funcionalidades)
}

func TestCatalogListaAsOpcoesDoFormulario(t *testing.T) {
	router := briefingRouter(new(MockLeadStore))

	req := httptest.NewRequest(http.MethodGet, "/briefing/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog map[string][]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&catalog))
	assert.Equal(t, entity.TipoProjetoOpcoes, catalog["tipoProjeto"])
	assert.Contains(t, catalog["integracoes"], "Nenhuma")
	assert.Len(t, catalog["funcionalidades"], len(entity.FuncionalidadesCatalogo))
}

func TestSessaoDesconhecida(t *testing.T) {
	router := briefingRouter(new(MockLeadStore))
	w := post(router, "/briefing/sessions/nao-existe/next", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitDiretoValidaTudo(t *testing.T) {
	store := new(MockLeadStore)
	router := briefingRouter(store)

	w := post(router, "/briefing", map[string]any{"nomeCompleto": "Ana"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitDiretoCompleto(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	router := briefingRouter(store)

	w := post(router, "/briefing", map[string]any{
		"nomeCompleto":      "Ana Souza",
		"email":             "ana@exemplo.com",
		"whatsapp":          "(21) 99999-9999",
		"tipoProjeto":       "landing-page",
		"descricaoCurta":    "página de captação",
		"problemaResolver":  "sem presença digital",
		"funcionalidades":   []string{"Formulário de contato"},
		"prazoDesejado":     "1-mes",
		"orcamentoEstimado": "2k-5k",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}
