package entity

import (
	"context"
	"strings"
	"time"
)

// Status do lead no funil. Todo lead nasce "novo";
// daí em diante só o painel admin mexe.
const (
	StatusNovo    = "novo"
	StatusContato = "contato"
	StatusFechado = "fechado"
	StatusPerdido = "perdido"

	// StatusTodos é só filtro de listagem, nunca vai pro banco.
	StatusTodos = "todos"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusNovo, StatusContato, StatusFechado, StatusPerdido:
		return true
	}
	return false
}

// Lead é o briefing enviado pelo formulário público.
// Os nomes JSON espelham as colunas da tabela "leads".
// Opcionais são ponteiros para irem como null explícito (e não "") no create.
type Lead struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`

	NomeCompleto string  `json:"nome_completo"`
	Email        string  `json:"email"`
	Whatsapp     string  `json:"whatsapp"`
	Empresa      *string `json:"empresa"`
	ComoConheceu *string `json:"como_conheceu"`

	TipoProjeto      string  `json:"tipo_projeto"`
	DescricaoCurta   string  `json:"descricao_curta"`
	ProblemaResolver string  `json:"problema_resolver"`
	Referencias      *string `json:"referencias"`

	TemDominio          *string  `json:"tem_dominio"`
	TemIdentidadeVisual *string  `json:"tem_identidade_visual"`
	Funcionalidades     []string `json:"funcionalidades"`
	PrecisaPainelAdmin  *string  `json:"precisa_painel_admin"`
	PrecisaAutenticacao *string  `json:"precisa_autenticacao"`
	Integracoes         []string `json:"integracoes"`
	PrecisaMobile       *string  `json:"precisa_mobile"`
	TemConteudoPronto   *string  `json:"tem_conteudo_pronto"`
	PrecisaManutencao   *string  `json:"precisa_manutencao"`

	PrazoDesejado     string  `json:"prazo_desejado"`
	OrcamentoEstimado string  `json:"orcamento_estimado"`
	InicioDesejado    *string `json:"inicio_desejado"`
	Observacoes       *string `json:"observacoes"`

	Status string `json:"status"`
}

// SearchText monta o texto da busca do painel: campos de contato e projeto
// não vazios, separados por espaço. Quem busca compara em minúsculas.
func (l *Lead) SearchText() string {
	fields := []string{l.NomeCompleto, l.Email, l.Whatsapp}
	if l.Empresa != nil {
		fields = append(fields, *l.Empresa)
	}
	fields = append(fields, l.TipoProjeto, l.DescricaoCurta)

	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " ")
}

type LeadRepositoryInterface interface {
	// Create grava o lead. id e created_at ficam por conta do banco.
	Create(ctx context.Context, lead *Lead) error

	// List retorna todos os leads, mais recente primeiro.
	// O token é a sessão do admin logado.
	List(ctx context.Context, token string) ([]Lead, error)

	// UpdateStatus troca o status de exatamente um lead.
	UpdateStatus(ctx context.Context, token, id, status string) error

	// Delete remove o lead pelo id.
	Delete(ctx context.Context, token, id string) error
}
