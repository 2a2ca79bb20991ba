package usecase

import (
	"context"
	"log"

	"github.com/andrefarias-dev/briefing-backend/internal/infra/queue"
)

type SubmitBriefingUseCase struct {
	Store LeadStore

	// Opcionais: nil desliga. Os dois são pós-gravação e best-effort,
	// rodam depois que o create confirmou e falha só gera log.
	Notifier Notifier
	Queue    QueueProducerInterface
}

func NewSubmitBriefingUseCase(store LeadStore, notifier Notifier, producer QueueProducerInterface) *SubmitBriefingUseCase {
	return &SubmitBriefingUseCase{
		Store:    store,
		Notifier: notifier,
		Queue:    producer,
	}
}

// Execute valida o briefing completo, grava o lead (um único create,
// status sempre "novo") e dispara as notificações. A notificação vem
// depois do create resolver, em sequência, e nunca derruba o envio.
func (uc *SubmitBriefingUseCase) Execute(ctx context.Context, input BriefingInput) (*SubmitBriefingOutput, error) {
	if errs := ValidateBriefing(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	lead := input.ToLead()

	if err := uc.Store.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "LEAD_CREATE_FAILED",
			Message: "erro ao enviar formulário: " + err.Error(),
		}
	}

	uc.afterCreate(ctx, input, lead.ID)

	return &SubmitBriefingOutput{Message: "briefing recebido"}, nil
}

func (uc *SubmitBriefingUseCase) afterCreate(ctx context.Context, input BriefingInput, leadID string) {
	if uc.Notifier != nil {
		if err := uc.Notifier.NotifyLeadCreated(ctx, input.Notification()); err != nil {
			log.Printf("⚠️ Webhook de novo lead falhou (não crítico): %v", err)
		}
	}

	if uc.Queue != nil {
		payload := queue.LeadCreatedPayload{
			LeadID:            leadID,
			Nome:              input.NomeCompleto,
			Email:             input.Email,
			Whatsapp:          input.Whatsapp,
			TipoProjeto:       input.TipoProjeto,
			OrcamentoEstimado: input.OrcamentoEstimado,
		}
		if err := uc.Queue.PublishLeadCreated(ctx, payload); err != nil {
			log.Printf("⚠️ Fila de novo lead falhou (não crítico): %v", err)
		}
	}
}
