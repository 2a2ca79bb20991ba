package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
)

// LeadRepository é o modo "banco próprio": mesma interface do client
// Supabase, mas direto no Postgres. As policies de RLS não existem aqui,
// então o token da sessão é ignorado; o gate de auth fica na borda HTTP.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, created_at, nome_completo, email, whatsapp, empresa, como_conheceu,
	tipo_projeto, descricao_curta, problema_resolver, referencias,
	tem_dominio, tem_identidade_visual, funcionalidades,
	precisa_painel_admin, precisa_autenticacao, integracoes,
	precisa_mobile, tem_conteudo_pronto, precisa_manutencao,
	prazo_desejado, orcamento_estimado, inicio_desejado, observacoes, status`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	lead.ID = uuid.New().String()

	query := `
		INSERT INTO leads (
			id, nome_completo, email, whatsapp, empresa, como_conheceu,
			tipo_projeto, descricao_curta, problema_resolver, referencias,
			tem_dominio, tem_identidade_visual, funcionalidades,
			precisa_painel_admin, precisa_autenticacao, integracoes,
			precisa_mobile, tem_conteudo_pronto, precisa_manutencao,
			prazo_desejado, orcamento_estimado, inicio_desejado, observacoes, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.NomeCompleto,
		lead.Email,
		lead.Whatsapp,
		lead.Empresa,
		lead.ComoConheceu,
		lead.TipoProjeto,
		lead.DescricaoCurta,
		lead.ProblemaResolver,
		lead.Referencias,
		lead.TemDominio,
		lead.TemIdentidadeVisual,
		pq.Array(lead.Funcionalidades),
		lead.PrecisaPainelAdmin,
		lead.PrecisaAutenticacao,
		pq.Array(lead.Integracoes),
		lead.PrecisaMobile,
		lead.TemConteudoPronto,
		lead.PrecisaManutencao,
		lead.PrazoDesejado,
		lead.OrcamentoEstimado,
		lead.InicioDesejado,
		lead.Observacoes,
		lead.Status,
	).Scan(&lead.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao inserir lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) List(ctx context.Context, _ string) ([]entity.Lead, error) {
	query := `SELECT` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		err := rows.Scan(
			&l.ID,
			&l.CreatedAt,
			&l.NomeCompleto,
			&l.Email,
			&l.Whatsapp,
			&l.Empresa,
			&l.ComoConheceu,
			&l.TipoProjeto,
			&l.DescricaoCurta,
			&l.ProblemaResolver,
			&l.Referencias,
			&l.TemDominio,
			&l.TemIdentidadeVisual,
			pq.Array(&l.Funcionalidades),
			&l.PrecisaPainelAdmin,
			&l.PrecisaAutenticacao,
			pq.Array(&l.Integracoes),
			&l.PrecisaMobile,
			&l.TemConteudoPronto,
			&l.PrecisaManutencao,
			&l.PrazoDesejado,
			&l.OrcamentoEstimado,
			&l.InicioDesejado,
			&l.Observacoes,
			&l.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, _, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lead %s não encontrado", id)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, _, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao apagar lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lead %s não encontrado", id)
	}
	return nil
}
