package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "site.title", "%s | LMFDB")
	message.SetString(lang, "site.name", "LMFDB")
	message.SetString(lang, "nav.random", "Objeto aleatório")

	message.SetString(lang, "smf.index.title", "Formas modulares de Siegel")
	message.SetString(lang, "smf.index.heading", "Famílias de formas modulares de Siegel")
	message.SetString(lang, "smf.index.empty", "Nenhuma família disponível.")
	message.SetString(lang, "smf.column.family", "Família")
	message.SetString(lang, "smf.column.degree", "Grau")
	message.SetString(lang, "smf.column.dimensions", "Dimensões")
	message.SetString(lang, "smf.degree.unknown", "desconhecido")
	message.SetString(lang, "smf.dimension.available", "disponível")
	message.SetString(lang, "smf.dimension.none", "nenhuma")

	message.SetString(lang, "smf.family.degree", "Grau: %d")
	message.SetString(lang, "smf.family.dimension_heading", "Dimensões")
	message.SetString(lang, "smf.family.dimension_formula", "Fórmula %s com argumentos %s")
	message.SetString(lang, "smf.family.dimension_missing", "Nenhuma fórmula de dimensão disponível para esta família.")
	message.SetString(lang, "smf.family.dimension_prompt", "Informe um argumento para calcular dimensões.")
	message.SetString(lang, "smf.family.samples_link", "Ver exemplos")

	message.SetString(lang, "smf.samples.title", "Exemplos de %s")
	message.SetString(lang, "smf.samples.count", "%d exemplos")
	message.SetString(lang, "smf.samples.empty", "Nenhum exemplo encontrado.")
	message.SetString(lang, "smf.column.name", "Nome")
	message.SetString(lang, "smf.column.weight", "Peso")
	message.SetString(lang, "smf.column.field", "Corpo")
	message.SetString(lang, "smf.column.eigenform", "Autoforma")
	message.SetString(lang, "smf.bool.yes", "sim")
	message.SetString(lang, "smf.bool.no", "não")

	message.SetString(lang, "web.error.title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.title_bad_request", "Requisição inválida")
	message.SetString(lang, "web.error.title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.message_not_found", "A página solicitada não existe.")
	message.SetString(lang, "web.error.message_server_error", "O servidor não conseguiu concluir sua requisição.")
	message.SetString(lang, "web.error.action_back", "Voltar às famílias")
}
