package postgres

import (
	"strings"

	"github.com/lib/pq"
)

// QuoteTable cita cada parte de um nome de tabela, com ou sem schema ("schema.tabela").
func QuoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}
