package reporting

import (
	"context"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
	"github.com/vfg2006/tawany-sales-analytics/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonReport struct {
	ID                string                   `json:"id"`
	RunID             string                   `json:"run_id,omitempty"`
	GeneratedAt       time.Time                `json:"generated_at"`
	RecordCount       int                      `json:"record_count"`
	Preview           []jsonRecord             `json:"preview"`
	RevenueByProduct  []productValue           `json:"revenue_by_product"`
	RevenueByDate     []jsonDateValue          `json:"revenue_by_date"`
	QuantityByProduct []domain.ProductQuantity `json:"quantity_by_product"`
	RevenueByMonth    []jsonMonthValue         `json:"revenue_by_month"`
	AvgPriceByProduct []productValue           `json:"avg_price_by_product"`
	Headline          *domain.HeadlineReport   `json:"headline,omitempty"`
}

type jsonRecord struct {
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	Date       string          `json:"date"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type jsonDateValue struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type jsonMonthValue struct {
	Month int             `json:"month"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// JSONReporter escreve o resumo de vendas como JSON indentado, com listas
// ordenadas no lugar dos mapas
type JSONReporter struct {
	out io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{out: w}
}

func (r *JSONReporter) Render(ctx context.Context, summary *domain.SalesSummary) error {
	if summary == nil {
		return errors.New("resumo de vendas ausente")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(toJSONReport(summary)), "erro ao escrever relatório em JSON")
}

func toJSONReport(summary *domain.SalesSummary) jsonReport {
	report := jsonReport{
		ID:                summary.ID,
		RunID:             summary.RunID,
		GeneratedAt:       summary.GeneratedAt,
		RecordCount:       summary.RecordCount,
		Preview:           make([]jsonRecord, 0, len(summary.Preview)),
		RevenueByProduct:  sortedByProduct(summary.RevenueByProduct),
		RevenueByDate:     make([]jsonDateValue, 0, len(summary.RevenueByDate)),
		QuantityByProduct: summary.QuantityByProduct,
		RevenueByMonth:    make([]jsonMonthValue, 0, len(summary.RevenueByMonth)),
		AvgPriceByProduct: sortedByProduct(summary.AvgPriceByProduct),
		Headline:          summary.Headline,
	}

	for _, record := range summary.Preview {
		report.Preview = append(report.Preview, jsonRecord{
			Product:    record.Product,
			Quantity:   record.Quantity,
			Date:       utils.FormatDate(record.Date),
			UnitPrice:  record.UnitPrice,
			TotalValue: record.TotalValue(),
		})
	}

	for _, item := range sortedByDate(summary.RevenueByDate) {
		report.RevenueByDate = append(report.RevenueByDate, jsonDateValue{
			Date:  utils.FormatDate(item.Date),
			Value: item.Value,
		})
	}

	for _, item := range sortedByMonth(summary.RevenueByMonth) {
		report.RevenueByMonth = append(report.RevenueByMonth, jsonMonthValue{
			Month: item.Month,
			Name:  utils.MonthName(item.Month),
			Value: item.Value,
		})
	}

	if report.QuantityByProduct == nil {
		report.QuantityByProduct = []domain.ProductQuantity{}
	}

	return report
}
