package i18n

var ptBRMessages = map[Code]string{
	CodeUnknown:              "Ocorreu um erro inesperado.",
	CodeNotFound:             "O registro solicitado não foi encontrado.",
	CodeFamilyNotFound:       `A família de formas modulares de Siegel "{{.name}}" não foi encontrada no banco de dados.`,
	CodeDimensionArgsInvalid: "Argumentos de dimensão inválidos: {{.reason}}",
	CodeSampleFilterInvalid:  "Filtro de amostras inválido: {{.reason}}",
	CodeDimensionUnavailable: `Nenhuma fórmula de dimensão está disponível para a família "{{.name}}".`,
}
