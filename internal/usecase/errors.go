package usecase

import "errors"

// ErrSemSessao indica que não há sessão ativa. O handler traduz
// em redirect pro login, nunca em erro "de verdade" pro usuário.
var ErrSemSessao = errors.New("sessão ausente ou expirada")

// DomainError é erro de regra de negócio (validação, estado inválido).
// Vira 4xx na borda HTTP.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha de infraestrutura (banco, Supabase, rede).
// Vira 5xx na borda HTTP; a mensagem carrega o detalhe remoto.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
