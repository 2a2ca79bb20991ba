package usecase

import (
	"context"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/queue"
)

type LeadStore = entity.LeadRepositoryInterface

// Notification é o payload do webhook de automação (n8n) disparado
// depois que o lead foi gravado. Falha aqui é só logada.
type Notification struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	TipoProjeto string `json:"tipoProjeto"`
	Orcamento   string `json:"orcamento"`
}

type Notifier interface {
	NotifyLeadCreated(ctx context.Context, n Notification) error
}

type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}

// SessionSource devolve o token de acesso vigente. O Board consulta
// na hora de cada mutação (nada de cachear token): se a sessão caiu
// no meio do caminho, a operação falha com ErrSemSessao ali mesmo.
type SessionSource interface {
	Token(ctx context.Context) (string, error)
}
