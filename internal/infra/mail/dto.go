package mail

type NewLeadEmailData struct {
	Nome              string
	Email             string
	Whatsapp          string
	TipoProjeto       string
	OrcamentoEstimado string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // caixa do time que recebe os avisos de lead
}
