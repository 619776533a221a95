package utils

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToFloat converte um decimal para float64 arredondado em duas casas, para respostas JSON.
func ToFloat(d decimal.Decimal) float64 {
	return RoundWithTwoDecimalPlace(d.InexactFloat64())
}

// FormatCurrency formata um valor como "$1,234" (sem casas decimais).
func FormatCurrency(d decimal.Decimal) string {
	rounded := d.Round(0)
	digits := humanize.BigComma(rounded.Abs().BigInt())
	if rounded.IsNegative() {
		return "-$" + digits
	}
	return "$" + digits
}

// FormatMultiplier formata o ROAS como "3.50x".
func FormatMultiplier(d decimal.Decimal) string {
	return d.StringFixed(2) + "x"
}

// FormatCount formata inteiros com separador de milhar.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
