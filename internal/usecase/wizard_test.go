package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
)

func novoWizardComStore(store LeadStore) *Wizard {
	return NewWizard(NewSubmitBriefingUseCase(store, nil, nil))
}

func TestWizardNextBloqueadoSemObrigatorios(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))

	err := wz.Next()
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, 1, wz.Step)
}

func TestWizardNextAvancaComPassoValido(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	wz.Set("nomeCompleto", "Ana Souza")
	wz.Set("email", "ana@exemplo.com")
	wz.Set("whatsapp", "(21) 99999-9999")

	assert.NoError(t, wz.Next())
	assert.Equal(t, 2, wz.Step)
}

func TestWizardBackNuncaDesceDoPrimeiroPasso(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))

	wz.Back()
	wz.Back()
	assert.Equal(t, 1, wz.Step)
}

func TestWizardNextNuncaPassaDoUltimoPasso(t *testing.T) {
	wz := wizardNoPasso5(new(MockLeadStore))

	assert.NoError(t, wz.Next())
	assert.Equal(t, TotalSteps, wz.Step)
}

func TestWizardSetTrocaExatamenteUmCampo(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	wz.Set("nomeCompleto", "Ana")
	wz.Set("email", "ana@exemplo.com")

	wz.Set("nomeCompleto", "Ana Souza")

	assert.Equal(t, "Ana Souza", wz.Form.NomeCompleto)
	assert.Equal(t, "ana@exemplo.com", wz.Form.Email)
}

func TestWizardSetCampoDesconhecido(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	err := wz.Set("naoExiste", "x")
	assert.True(t, IsDomainError(err))
}

func TestWizardToggleDuasVezesVoltaAoOriginal(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	wz.Toggle("funcionalidades", "Blog / Notícias")
	original := append([]string{}, wz.Form.Funcionalidades...)

	wz.Toggle("funcionalidades", "Sistema de busca")
	wz.Toggle("funcionalidades", "Sistema de busca")

	assert.Equal(t, original, wz.Form.Funcionalidades)
}

func TestWizardTogglePreservaOrdemDeInsercao(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	wz.Toggle("integracoes", "Google Analytics")
	wz.Toggle("integracoes", "Facebook Pixel")
	wz.Toggle("integracoes", "Nenhuma")
	wz.Toggle("integracoes", "Facebook Pixel")

	assert.Equal(t, []string{"Google Analytics", "Nenhuma"}, wz.Form.Integracoes)
}

// wizardNoPasso5 preenche tudo e caminha até a confirmação.
func wizardNoPasso5(store LeadStore) *Wizard {
	wz := novoWizardComStore(store)
	form := formularioCompleto()
	wz.Form = form
	for wz.Step < TotalSteps {
		if err := wz.Next(); err != nil {
			panic(err)
		}
	}
	return wz
}

func TestWizardSubmitForaDoPasso5(t *testing.T) {
	wz := novoWizardComStore(new(MockLeadStore))
	_, err := wz.Submit(context.Background())
	assert.True(t, IsDomainError(err))
}

func TestWizardSubmitForcaStatusNovoEUmUnicoCreate(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Status == entity.StatusNovo
	})).Return(nil).Once()

	wz := wizardNoPasso5(store)

	_, err := wz.Submit(context.Background())
	assert.NoError(t, err)
	assert.True(t, wz.Submitted)
	assert.False(t, wz.Submitting)

	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Create", 1)
}

func TestWizardSubmitFalhaVoltaParaNaoEnviado(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("policy de INSERT negou"))

	wz := wizardNoPasso5(store)

	_, err := wz.Submit(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "policy de INSERT negou")
	assert.False(t, wz.Submitted)
	assert.False(t, wz.Submitting)

	// O usuário pode tentar de novo.
	store2 := new(MockLeadStore)
	wz2 := wizardNoPasso5(store2)
	store2.On("Create", mock.Anything, mock.Anything).Return(nil)
	_, err = wz2.Submit(context.Background())
	assert.NoError(t, err)
}

func TestWizardSubmitDuasVezesEhRejeitado(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	wz := wizardNoPasso5(store)
	_, err := wz.Submit(context.Background())
	assert.NoError(t, err)

	_, err = wz.Submit(context.Background())
	assert.True(t, IsDomainError(err))
	store.AssertNumberOfCalls(t, "Create", 1)
}
