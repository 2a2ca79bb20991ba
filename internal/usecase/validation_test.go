package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStep1ExigeContato(t *testing.T) {
	in := BriefingInput{}
	errs := ValidateStep(in, 1)
	assert.Len(t, errs, 3)

	in.NomeCompleto = "Ana"
	in.Email = "ana@exemplo.com"
	errs = ValidateStep(in, 1)
	assert.Len(t, errs, 1)
	assert.Equal(t, "whatsapp", errs[0].Field)

	in.Whatsapp = "(21) 99999-9999"
	assert.Empty(t, ValidateStep(in, 1))
}

func TestValidateStep2ExigeProjeto(t *testing.T) {
	in := BriefingInput{TipoProjeto: "ecommerce", DescricaoCurta: "loja"}
	errs := ValidateStep(in, 2)
	assert.Len(t, errs, 1)
	assert.Equal(t, "problemaResolver", errs[0].Field)

	in.ProblemaResolver = "vendas baixas"
	assert.Empty(t, ValidateStep(in, 2))
}

func TestValidateStep3ExigePeloMenosUmaFuncionalidade(t *testing.T) {
	in := BriefingInput{}
	assert.NotEmpty(t, ValidateStep(in, 3))

	in.Funcionalidades = []string{"Blog / Notícias"}
	assert.Empty(t, ValidateStep(in, 3))
}

func TestValidateStep4ExigePrazoEOrcamento(t *testing.T) {
	in := BriefingInput{PrazoDesejado: "urgente"}
	errs := ValidateStep(in, 4)
	assert.Len(t, errs, 1)
	assert.Equal(t, "orcamentoEstimado", errs[0].Field)

	in.OrcamentoEstimado = "ate-2k"
	assert.Empty(t, ValidateStep(in, 4))
}

func TestValidateStep5NaoTemObrigatorios(t *testing.T) {
	assert.Empty(t, ValidateStep(BriefingInput{}, 5))
}

func TestValidateBriefingAcumulaTodosOsPassos(t *testing.T) {
	errs := ValidateBriefing(BriefingInput{})
	// 3 do passo 1 + 3 do passo 2 + 1 do passo 3 + 2 do passo 4
	assert.Len(t, errs, 9)

	assert.Empty(t, ValidateBriefing(formularioCompleto()))
}
