package usecase

import (
	"context"
	"slices"
)

// Wizard é a máquina de estados do formulário em cinco passos.
// O passo anda de 1 a 5; o 5 ainda tem o sub-estado de envio
// (não enviado -> enviando -> enviado, terminal).
//
// Não é thread-safe: quem guarda sessões de wizard serializa o acesso.
type Wizard struct {
	Step       int
	Submitting bool
	Submitted  bool
	Form       BriefingInput

	submit *SubmitBriefingUseCase
}

func NewWizard(submit *SubmitBriefingUseCase) *Wizard {
	return &Wizard{
		Step:   1,
		Form:   BriefingInput{Funcionalidades: []string{}, Integracoes: []string{}},
		submit: submit,
	}
}

// Set troca exatamente um campo do formulário; o resto fica como está.
// Campo desconhecido é erro de domínio, não silêncio.
func (wz *Wizard) Set(field, value string) error {
	switch field {
	case "nomeCompleto":
		wz.Form.NomeCompleto = value
	case "email":
		wz.Form.Email = value
	case "whatsapp":
		wz.Form.Whatsapp = value
	case "empresa":
		wz.Form.Empresa = value
	case "comoConheceu":
		wz.Form.ComoConheceu = value
	case "tipoProjeto":
		wz.Form.TipoProjeto = value
	case "descricaoCurta":
		wz.Form.DescricaoCurta = value
	case "problemaResolver":
		wz.Form.ProblemaResolver = value
	case "referencias":
		wz.Form.Referencias = value
	case "temDominio":
		wz.Form.TemDominio = value
	case "temIdentidadeVisual":
		wz.Form.TemIdentidadeVisual = value
	case "precisaPainelAdmin":
		wz.Form.PrecisaPainelAdmin = value
	case "precisaAutenticacao":
		wz.Form.PrecisaAutenticacao = value
	case "precisaMobile":
		wz.Form.PrecisaMobile = value
	case "temConteudoPronto":
		wz.Form.TemConteudoPronto = value
	case "precisaManutencao":
		wz.Form.PrecisaManutencao = value
	case "prazoDesejado":
		wz.Form.PrazoDesejado = value
	case "orcamentoEstimado":
		wz.Form.OrcamentoEstimado = value
	case "inicioDesejado":
		wz.Form.InicioDesejado = value
	case "observacoes":
		wz.Form.Observacoes = value
	default:
		return &DomainError{Code: "UNKNOWN_FIELD", Message: "campo desconhecido: " + field}
	}
	return nil
}

// Toggle alterna a presença do valor num campo de checkbox.
// Já marcado sai; não marcado entra no fim (a ordem de inserção
// é mantida pra exibição estável).
func (wz *Wizard) Toggle(field, value string) error {
	var set *[]string
	switch field {
	case "funcionalidades":
		set = &wz.Form.Funcionalidades
	case "integracoes":
		set = &wz.Form.Integracoes
	default:
		return &DomainError{Code: "UNKNOWN_FIELD", Message: "campo de múltipla escolha desconhecido: " + field}
	}

	if i := slices.Index(*set, value); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
	} else {
		*set = append(*set, value)
	}
	return nil
}

// Next avança um passo se os obrigatórios do passo atual estão
// preenchidos; senão devolve o erro de validação e fica onde está.
// Nunca passa do passo 5.
func (wz *Wizard) Next() error {
	if errs := ValidateStep(wz.Form, wz.Step); len(errs) > 0 {
		return validationDomainError(errs)
	}
	if wz.Step < TotalSteps {
		wz.Step++
	}
	return nil
}

// Back volta um passo sem revalidar nada. Nunca desce do passo 1.
func (wz *Wizard) Back() {
	if wz.Step > 1 {
		wz.Step--
	}
}

// Submit só funciona no passo 5 com envio ainda pendente. Sucesso leva
// ao estado terminal; falha volta pra "não enviado" com o erro na mão
// do usuário, que pode tentar de novo.
func (wz *Wizard) Submit(ctx context.Context) (*SubmitBriefingOutput, error) {
	if wz.Step != TotalSteps {
		return nil, &DomainError{Code: "WRONG_STEP", Message: "envio só é permitido no passo de confirmação"}
	}
	if wz.Submitted {
		return nil, &DomainError{Code: "ALREADY_SUBMITTED", Message: "este briefing já foi enviado"}
	}
	if wz.Submitting {
		return nil, &DomainError{Code: "SUBMIT_IN_FLIGHT", Message: "envio em andamento"}
	}

	wz.Submitting = true
	out, err := wz.submit.Execute(ctx, wz.Form)
	wz.Submitting = false
	if err != nil {
		return nil, err
	}

	wz.Submitted = true
	return out, nil
}
