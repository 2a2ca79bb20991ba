package usecase

import "github.com/andrefarias-dev/briefing-backend/internal/entity"

// BriefingInput é o formulário como o front envia: chaves camelCase,
// strings vazias para o que não foi preenchido, arrays para os checkboxes.
type BriefingInput struct {
	NomeCompleto string `json:"nomeCompleto"`
	Email        string `json:"email"`
	Whatsapp     string `json:"whatsapp"`
	Empresa      string `json:"empresa"`
	ComoConheceu string `json:"comoConheceu"`

	TipoProjeto      string `json:"tipoProjeto"`
	DescricaoCurta   string `json:"descricaoCurta"`
	ProblemaResolver string `json:"problemaResolver"`
	Referencias      string `json:"referencias"`

	TemDominio          string   `json:"temDominio"`
	TemIdentidadeVisual string   `json:"temIdentidadeVisual"`
	Funcionalidades     []string `json:"funcionalidades"`
	PrecisaPainelAdmin  string   `json:"precisaPainelAdmin"`
	PrecisaAutenticacao string   `json:"precisaAutenticacao"`
	Integracoes         []string `json:"integracoes"`
	PrecisaMobile       string   `json:"precisaMobile"`
	TemConteudoPronto   string   `json:"temConteudoPronto"`
	PrecisaManutencao   string   `json:"precisaManutencao"`

	PrazoDesejado     string `json:"prazoDesejado"`
	OrcamentoEstimado string `json:"orcamentoEstimado"`
	InicioDesejado    string `json:"inicioDesejado"`
	Observacoes       string `json:"observacoes"`
}

// ToLead faz o de-para camelCase -> coluna do banco. Opcional vazio vira
// null (ponteiro nil); obrigatório vai como está. Status é sempre forçado
// pra "novo", independente do que o cliente mandar.
func (in *BriefingInput) ToLead() *entity.Lead {
	funcs := in.Funcionalidades
	if funcs == nil {
		funcs = []string{}
	}
	integs := in.Integracoes
	if integs == nil {
		integs = []string{}
	}

	return &entity.Lead{
		NomeCompleto:     in.NomeCompleto,
		Email:            in.Email,
		Whatsapp:         in.Whatsapp,
		Empresa:          nullString(in.Empresa),
		ComoConheceu:     nullString(in.ComoConheceu),
		TipoProjeto:      in.TipoProjeto,
		DescricaoCurta:   in.DescricaoCurta,
		ProblemaResolver: in.ProblemaResolver,
		Referencias:      nullString(in.Referencias),

		TemDominio:          nullString(in.TemDominio),
		TemIdentidadeVisual: nullString(in.TemIdentidadeVisual),
		Funcionalidades:     funcs,
		PrecisaPainelAdmin:  nullString(in.PrecisaPainelAdmin),
		PrecisaAutenticacao: nullString(in.PrecisaAutenticacao),
		Integracoes:         integs,
		PrecisaMobile:       nullString(in.PrecisaMobile),
		TemConteudoPronto:   nullString(in.TemConteudoPronto),
		PrecisaManutencao:   nullString(in.PrecisaManutencao),

		PrazoDesejado:     in.PrazoDesejado,
		OrcamentoEstimado: in.OrcamentoEstimado,
		InicioDesejado:    nullString(in.InicioDesejado),
		Observacoes:       nullString(in.Observacoes),

		Status: entity.StatusNovo,
	}
}

// Notification monta o payload enxuto do webhook.
func (in *BriefingInput) Notification() Notification {
	return Notification{
		Nome:        in.NomeCompleto,
		Email:       in.Email,
		Whatsapp:    in.Whatsapp,
		TipoProjeto: in.TipoProjeto,
		Orcamento:   in.OrcamentoEstimado,
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type SubmitBriefingOutput struct {
	Message string `json:"message"`
}
