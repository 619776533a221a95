package domain

// Dataset é o resultado de um carregamento.
// Warnings conta os defeitos de linha recuperados pelo parser (linhas puladas ou células anuladas).
type Dataset struct {
	Records  []Record
	Warnings int
}
