package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
	"github.com/andrefarias-dev/briefing-backend/internal/infra/queue"
)

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadStore) List(ctx context.Context, token string) ([]entity.Lead, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadStore) UpdateStatus(ctx context.Context, token, id, status string) error {
	args := m.Called(ctx, token, id, status)
	return args.Error(0)
}

func (m *MockLeadStore) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyLeadCreated(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// staticSession entrega sempre o mesmo token (ou a ausência dele).
type staticSession struct {
	token string
}

func (s staticSession) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", ErrSemSessao
	}
	return s.token, nil
}

// formularioCompleto devolve um briefing que passa nos quatro predicados.
func formularioCompleto() BriefingInput {
	return BriefingInput{
		NomeCompleto:      "Ana Souza",
		Email:             "ana@exemplo.com",
		Whatsapp:          "(21) 99999-9999",
		TipoProjeto:       "landing-page",
		DescricaoCurta:    "Landing page para captação",
		ProblemaResolver:  "Sem presença digital",
		Funcionalidades:   []string{"Formulário de contato"},
		PrazoDesejado:     "1-mes",
		OrcamentoEstimado: "2k-5k",
	}
}
