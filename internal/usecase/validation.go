package usecase

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TotalSteps do formulário. O passo 5 é só revisão e envio.
const TotalSteps = 5

// ValidateStep aplica o predicado de obrigatórios daquele passo.
// Passo fora de 1..4 (incluindo o 5) não tem obrigatório nenhum.
func ValidateStep(in BriefingInput, step int) []ValidationError {
	var errs []ValidationError

	switch step {
	case 1:
		if in.NomeCompleto == "" {
			errs = append(errs, ValidationError{"nomeCompleto", "é obrigatório"})
		}
		if in.Email == "" {
			errs = append(errs, ValidationError{"email", "é obrigatório"})
		}
		if in.Whatsapp == "" {
			errs = append(errs, ValidationError{"whatsapp", "é obrigatório"})
		}
	case 2:
		if in.TipoProjeto == "" {
			errs = append(errs, ValidationError{"tipoProjeto", "é obrigatório"})
		}
		if in.DescricaoCurta == "" {
			errs = append(errs, ValidationError{"descricaoCurta", "é obrigatória"})
		}
		if in.ProblemaResolver == "" {
			errs = append(errs, ValidationError{"problemaResolver", "é obrigatório"})
		}
	case 3:
		if len(in.Funcionalidades) == 0 {
			errs = append(errs, ValidationError{"funcionalidades", "selecione pelo menos uma"})
		}
	case 4:
		if in.PrazoDesejado == "" {
			errs = append(errs, ValidationError{"prazoDesejado", "é obrigatório"})
		}
		if in.OrcamentoEstimado == "" {
			errs = append(errs, ValidationError{"orcamentoEstimado", "é obrigatório"})
		}
	}

	return errs
}

// ValidateBriefing roda os quatro predicados de uma vez (caminho do
// envio direto, sem sessão de wizard).
func ValidateBriefing(in BriefingInput) []ValidationError {
	var errs []ValidationError
	for step := 1; step <= 4; step++ {
		errs = append(errs, ValidateStep(in, step)...)
	}
	return errs
}

func validationDomainError(errs []ValidationError) *DomainError {
	msg := "preencha todos os campos obrigatórios: "
	for i, e := range errs {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return &DomainError{Code: "VALIDATION_ERROR", Message: msg}
}
