// Package brl formata valores monetários no padrão brasileiro
// ("R$ 1.234,56") para relatórios e rótulos de exibição.
// O arredondamento acontece só aqui, nunca no motor de cálculo.
package brl

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format devolve o valor como moeda pt-BR com duas casas: "R$ 1.234,56".
func Format(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatNumber devolve o número com separadores pt-BR, sem o prefixo de moeda.
func FormatNumber(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// MonthName devolve o nome do mês em português ("janeiro" .. "dezembro").
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}
