// Package reporting contém os renderizadores que apresentam o resumo de vendas
package reporting

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter define a interface de um destino de apresentação do resumo de vendas
type Reporter interface {
	Render(ctx context.Context, summary *domain.SalesSummary) error
}

// New cria os renderizadores para o formato configurado, todos escrevendo em w
func New(format string, w io.Writer) ([]Reporter, error) {
	switch format {
	case config.ReportFormatText:
		return []Reporter{NewConsoleReporter(w)}, nil
	case config.ReportFormatJSON:
		return []Reporter{NewJSONReporter(w)}, nil
	case config.ReportFormatAll:
		return []Reporter{NewConsoleReporter(w), NewJSONReporter(w)}, nil
	default:
		return nil, fmt.Errorf("formato de relatório desconhecido: %q", format)
	}
}

type productValue struct {
	Product string          `json:"product"`
	Value   decimal.Decimal `json:"value"`
}

type dateValue struct {
	Date  time.Time
	Value decimal.Decimal
}

type monthValue struct {
	Month int
	Value decimal.Decimal
}

// As agregações são mapas; para apresentação as chaves são ordenadas de forma
// crescente, como o groupby do relatório original.

func sortedByProduct(values map[string]decimal.Decimal) []productValue {
	sorted := make([]productValue, 0, len(values))
	for product, value := range values {
		sorted = append(sorted, productValue{Product: product, Value: value})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Product < sorted[j].Product })
	return sorted
}

func sortedByDate(values map[time.Time]decimal.Decimal) []dateValue {
	sorted := make([]dateValue, 0, len(values))
	for date, value := range values {
		sorted = append(sorted, dateValue{Date: date, Value: value})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return sorted
}

func sortedByMonth(values map[int]decimal.Decimal) []monthValue {
	sorted := make([]monthValue, 0, len(values))
	for month, value := range values {
		sorted = append(sorted, monthValue{Month: month, Value: value})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Month < sorted[j].Month })
	return sorted
}
