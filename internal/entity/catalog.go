package entity

// Catálogos de opções do formulário. Os valores curtos (slug) são os que
// vão pro banco; funcionalidades e integrações guardam o label inteiro.

var ComoConheceuOpcoes = []string{"linkedin", "instagram", "indicacao", "google", "portfolio", "outro"}

var TipoProjetoOpcoes = []string{
	"landing-page", "site-institucional", "ecommerce", "sistema-web",
	"automacao", "integracao-ia", "app-mobile", "outro",
}

var FuncionalidadesCatalogo = []string{
	"Formulário de contato",
	"Chat / WhatsApp",
	"Blog / Notícias",
	"Galeria de imagens",
	"Área de membros",
	"Sistema de pagamento",
	"Agendamento online",
	"Integração com redes sociais",
	"Dashboard / Relatórios",
	"API / Integrações externas",
	"Multi-idioma",
	"Sistema de busca",
}

var IntegracoesCatalogo = []string{
	"Gateway de pagamento (Stripe, Mercado Pago)",
	"Email marketing (Mailchimp, SendGrid)",
	"CRM (HubSpot, Salesforce)",
	"Google Analytics",
	"Facebook Pixel",
	"Zapier / Make / n8n",
	"APIs customizadas",
	"Nenhuma",
}

var (
	TemDominioOpcoes          = []string{"sim", "nao", "nao-sei"}
	TemIdentidadeVisualOpcoes = []string{"sim-completo", "sim-parcial", "nao"}
	PrecisaPainelAdminOpcoes  = []string{"sim", "nao", "nao-sei"}
	PrecisaAutenticacaoOpcoes = []string{"sim", "nao", "nao-sei"}
	PrecisaMobileOpcoes       = []string{"sim", "responsivo", "nao"}
	TemConteudoProntoOpcoes   = []string{"sim", "parcial", "nao"}
	PrecisaManutencaoOpcoes   = []string{"sim", "pontual", "nao"}
	PrazoDesejadoOpcoes       = []string{"urgente", "1-mes", "2-3-meses", "flexivel"}
	OrcamentoEstimadoOpcoes   = []string{"ate-2k", "2k-5k", "5k-10k", "10k-20k", "20k+", "nao-sei"}
	InicioDesejadoOpcoes      = []string{"imediato", "semana", "mes", "trimestre", "indefinido"}
)
