package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/http/middleware"
	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

// BriefingHandler expõe o formulário público: o envio direto (uma
// chamada com o formulário inteiro) e a sessão de wizard passo a passo.
// As sessões vivem em memória; servidor reiniciou, formulário recomeça.
type BriefingHandler struct {
	SubmitUC *usecase.SubmitBriefingUseCase

	mu      sync.Mutex
	wizards map[string]*usecase.Wizard
}

func NewBriefingHandler(submitUC *usecase.SubmitBriefingUseCase) *BriefingHandler {
	return &BriefingHandler{
		SubmitUC: submitUC,
		wizards:  make(map[string]*usecase.Wizard),
	}
}

// HandleCatalog expõe as opções de cada campo do formulário, na ordem
// em que aparecem na tela.
func (h *BriefingHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"comoConheceu":        entity.ComoConheceuOpcoes,
		"tipoProjeto":         entity.TipoProjetoOpcoes,
		"funcionalidades":     entity.FuncionalidadesCatalogo,
		"integracoes":         entity.IntegracoesCatalogo,
		"temDominio":          entity.TemDominioOpcoes,
		"temIdentidadeVisual": entity.TemIdentidadeVisualOpcoes,
		"precisaPainelAdmin":  entity.PrecisaPainelAdminOpcoes,
		"precisaAutenticacao": entity.PrecisaAutenticacaoOpcoes,
		"precisaMobile":       entity.PrecisaMobileOpcoes,
		"temConteudoPronto":   entity.TemConteudoProntoOpcoes,
		"precisaManutencao":   entity.PrecisaManutencaoOpcoes,
		"prazoDesejado":       entity.PrazoDesejadoOpcoes,
		"orcamentoEstimado":   entity.OrcamentoEstimadoOpcoes,
		"inicioDesejado":      entity.InicioDesejadoOpcoes,
	})
}

// HandleSubmit é o caminho sem estado: valida os quatro passos de uma
// vez e envia.
func (h *BriefingHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.BriefingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordBriefingSubmitted("error")
		writeError(w, err)
		return
	}

	middleware.RecordBriefingSubmitted("success")
	writeJSON(w, http.StatusCreated, output)
}

type wizardState struct {
	ID         string                `json:"id"`
	Step       int                   `json:"step"`
	TotalSteps int                   `json:"totalSteps"`
	Submitting bool                  `json:"submitting"`
	Submitted  bool                  `json:"submitted"`
	Form       usecase.BriefingInput `json:"form"`
}

func (h *BriefingHandler) state(id string, wz *usecase.Wizard) wizardState {
	return wizardState{
		ID:         id,
		Step:       wz.Step,
		TotalSteps: usecase.TotalSteps,
		Submitting: wz.Submitting,
		Submitted:  wz.Submitted,
		Form:       wz.Form,
	}
}

func (h *BriefingHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	h.mu.Lock()
	wz := usecase.NewWizard(h.SubmitUC)
	h.wizards[id] = wz
	state := h.state(id, wz)
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, state)
}

func (h *BriefingHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(id string, wz *usecase.Wizard) (int, any, error) {
		return http.StatusOK, h.state(id, wz), nil
	})
}

type updateFieldRequest struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Toggle bool   `json:"toggle"`
}

// HandleUpdateField troca um campo simples ou alterna um valor de
// checkbox, conforme o flag toggle.
func (h *BriefingHandler) HandleUpdateField(w http.ResponseWriter, r *http.Request) {
	var req updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	h.withWizard(w, r, func(id string, wz *usecase.Wizard) (int, any, error) {
		var err error
		if req.Toggle {
			err = wz.Toggle(req.Field, req.Value)
		} else {
			err = wz.Set(req.Field, req.Value)
		}
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, h.state(id, wz), nil
	})
}

func (h *BriefingHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(id string, wz *usecase.Wizard) (int, any, error) {
		if err := wz.Next(); err != nil {
			return 0, nil, err
		}
		return http.StatusOK, h.state(id, wz), nil
	})
}

func (h *BriefingHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(id string, wz *usecase.Wizard) (int, any, error) {
		wz.Back()
		return http.StatusOK, h.state(id, wz), nil
	})
}

func (h *BriefingHandler) HandleSessionSubmit(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(id string, wz *usecase.Wizard) (int, any, error) {
		if _, err := wz.Submit(r.Context()); err != nil {
			middleware.RecordBriefingSubmitted("error")
			return 0, nil, err
		}
		middleware.RecordBriefingSubmitted("success")
		return http.StatusOK, h.state(id, wz), nil
	})
}

// withWizard localiza a sessão e roda a operação sob o lock do handler;
// cada wizard é single-threaded por contrato.
func (h *BriefingHandler) withWizard(w http.ResponseWriter, r *http.Request, fn func(id string, wz *usecase.Wizard) (int, any, error)) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	wz, ok := h.wizards[id]
	if !ok {
		h.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "sessão de briefing não encontrada"})
		return
	}

	status, body, err := fn(id, wz)
	h.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, body)
}
