package utils

import "time"

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName retorna o nome do mês em português (1 = Janeiro).
// Meses fora do intervalo retornam string vazia.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// FormatDate formata a data no padrão 2006-01-02
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
