package usecase

import (
	"context"
	"strings"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
)

// Board é o estado do painel admin para uma sessão: o snapshot de leads,
// o filtro de status, a busca e o ponteiro de card expandido.
//
// Regra de ouro das mutações: o estado local só muda depois que o remoto
// confirmou. Falha remota deixa a lista exatamente como estava.
type Board struct {
	Store   LeadStore
	Session SessionSource

	leads      []entity.Lead
	loaded     bool
	filter     string
	search     string
	expandedID string
}

func NewBoard(store LeadStore, session SessionSource) *Board {
	return &Board{
		Store:   store,
		Session: session,
		filter:  entity.StatusTodos,
	}
}

// Refresh busca o token vigente e recarrega a lista inteira do banco
// (ordem created_at desc vem de lá). Refreshes concorrentes não são
// deduplicados, igual ao comportamento do painel original.
func (b *Board) Refresh(ctx context.Context) error {
	token, err := b.Session.Token(ctx)
	if err != nil {
		return err
	}

	leads, err := b.Store.List(ctx, token)
	if err != nil {
		return &TechnicalError{Code: "LEAD_LIST_FAILED", Message: "erro ao carregar leads: " + err.Error()}
	}

	b.leads = leads
	b.loaded = true
	return nil
}

// Loaded diz se já houve ao menos um fetch com sucesso nesta sessão.
func (b *Board) Loaded() bool {
	return b.loaded
}

func (b *Board) SetFilter(status string) error {
	if status != entity.StatusTodos && !entity.IsValidStatus(status) {
		return &DomainError{Code: "INVALID_STATUS", Message: "filtro de status inválido: " + status}
	}
	b.filter = status
	return nil
}

func (b *Board) SetSearch(q string) {
	b.search = q
}

// View deriva a lista filtrada. Função pura de {leads, filtro, busca}:
// mesmo estado, mesma saída, na ordem do snapshot. Status precisa bater
// (ou filtro "todos") e a busca é substring case-insensitive sobre os
// campos de contato/projeto concatenados.
func (b *Board) View() []entity.Lead {
	q := strings.ToLower(strings.TrimSpace(b.search))

	out := make([]entity.Lead, 0, len(b.leads))
	for _, l := range b.leads {
		if b.filter != entity.StatusTodos && l.Status != b.filter {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(l.SearchText()), q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Total de leads no snapshot, sem filtro.
func (b *Board) Total() int {
	return len(b.leads)
}

// ToggleExpand alterna o card expandido: o mesmo id fecha, um id
// diferente troca. No máximo um expandido por vez.
func (b *Board) ToggleExpand(id string) {
	if b.expandedID == id {
		b.expandedID = ""
		return
	}
	b.expandedID = id
}

func (b *Board) ExpandedID() string {
	return b.expandedID
}

// UpdateStatus faz exatamente um PATCH remoto no lead e, só com o remoto
// confirmado, espelha o status no snapshot. Os demais leads não são tocados.
func (b *Board) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.IsValidStatus(status) {
		return &DomainError{Code: "INVALID_STATUS", Message: "status inválido: " + status}
	}

	token, err := b.Session.Token(ctx)
	if err != nil {
		return err
	}

	if err := b.Store.UpdateStatus(ctx, token, id, status); err != nil {
		return &TechnicalError{Code: "STATUS_UPDATE_FAILED", Message: "falha ao atualizar status: " + err.Error()}
	}

	for i := range b.leads {
		if b.leads[i].ID == id {
			b.leads[i].Status = status
			break
		}
	}
	return nil
}

// Delete remove o lead no remoto e, no sucesso, tira do snapshot e limpa
// o ponteiro de expansão se apontava pra ele. A confirmação do usuário é
// responsabilidade de quem chama.
func (b *Board) Delete(ctx context.Context, id string) error {
	token, err := b.Session.Token(ctx)
	if err != nil {
		return err
	}

	if err := b.Store.Delete(ctx, token, id); err != nil {
		return &TechnicalError{Code: "LEAD_DELETE_FAILED", Message: "falha ao apagar lead: " + err.Error()}
	}

	kept := b.leads[:0]
	for _, l := range b.leads {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	b.leads = kept

	if b.expandedID == id {
		b.expandedID = ""
	}
	return nil
}
