package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda valores monetários para centavos
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatCurrency formata um valor em reais com duas casas decimais
func FormatCurrency(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
