package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

// Todas as funções deste arquivo são puras: recebem a sequência de registros
// como parâmetro, não alteram a entrada e devolvem um novo valor a cada
// chamada. Empates são resolvidos pela ordem de primeira aparição do produto.

// productAggregator acumula os totais de um produto
type productAggregator struct {
	product  string
	quantity int
	revenue  decimal.Decimal
	priceSum decimal.Decimal
	count    int
}

// groupByProduct agrupa os registros por produto, preservando a ordem de
// primeira aparição
func groupByProduct(records []domain.SaleRecord) []*productAggregator {
	index := make(map[string]*productAggregator)
	groups := make([]*productAggregator, 0)

	for _, record := range records {
		group, exists := index[record.Product]
		if !exists {
			group = &productAggregator{product: record.Product}
			index[record.Product] = group
			groups = append(groups, group)
		}

		group.quantity += record.Quantity
		group.revenue = group.revenue.Add(record.TotalValue())
		group.priceSum = group.priceSum.Add(record.UnitPrice)
		group.count++
	}

	return groups
}

// TotalByProduct soma o valor total das vendas agrupado por produto.
// Produtos ausentes da entrada não aparecem no resultado.
func TotalByProduct(records []domain.SaleRecord) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, group := range groupByProduct(records) {
		totals[group.product] = group.revenue
	}
	return totals
}

// TotalByDate soma o valor total das vendas agrupado por dia
func TotalByDate(records []domain.SaleRecord) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, record := range records {
		day := domain.DateOf(record.Date)
		totals[day] = totals[day].Add(record.TotalValue())
	}
	return totals
}

// QuantityRankedByProduct soma as quantidades por produto e ordena de forma
// decrescente. A ordenação é estável, então empates mantêm a ordem de
// primeira aparição.
func QuantityRankedByProduct(records []domain.SaleRecord) []domain.ProductQuantity {
	groups := groupByProduct(records)

	ranking := make([]domain.ProductQuantity, 0, len(groups))
	for _, group := range groups {
		ranking = append(ranking, domain.ProductQuantity{
			Product:  group.product,
			Quantity: group.quantity,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	return ranking
}

// TotalByMonth soma o valor total das vendas agrupado pelo mês (1..12)
func TotalByMonth(records []domain.SaleRecord) map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)
	for _, record := range records {
		month := record.Month()
		totals[month] = totals[month].Add(record.TotalValue())
	}
	return totals
}

// AvgPriceByProduct calcula a média aritmética do preço unitário por produto
func AvgPriceByProduct(records []domain.SaleRecord) map[string]decimal.Decimal {
	averages := make(map[string]decimal.Decimal)
	for _, group := range groupByProduct(records) {
		averages[group.product] = group.priceSum.Div(decimal.NewFromInt(int64(group.count)))
	}
	return averages
}

// BuildHeadline calcula a receita total e os produtos com maior quantidade e
// maior receita. Em caso de empate vence o primeiro máximo encontrado na
// ordem de primeira aparição.
func BuildHeadline(records []domain.SaleRecord) (*domain.HeadlineReport, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	groups := groupByProduct(records)

	report := &domain.HeadlineReport{
		TotalRevenue: decimal.Zero,
	}

	var topQuantity, topRevenue *productAggregator
	for _, group := range groups {
		report.TotalRevenue = report.TotalRevenue.Add(group.revenue)

		if topQuantity == nil || group.quantity > topQuantity.quantity {
			topQuantity = group
		}
		if topRevenue == nil || group.revenue.GreaterThan(topRevenue.revenue) {
			topRevenue = group
		}
	}

	report.TopQuantityProduct = topQuantity.product
	report.TopRevenueProduct = topRevenue.product

	return report, nil
}

// Summarize executa todas as agregações e monta o resumo consumido pelos
// relatórios. previewSize limita a quantidade de registros de amostra.
func Summarize(records []domain.SaleRecord, previewSize int) (*domain.SalesSummary, error) {
	headline, err := BuildHeadline(records)
	if err != nil {
		return nil, err
	}

	if previewSize < 0 {
		previewSize = 0
	}
	if previewSize > len(records) {
		previewSize = len(records)
	}
	preview := make([]domain.SaleRecord, previewSize)
	copy(preview, records[:previewSize])

	return &domain.SalesSummary{
		RecordCount:       len(records),
		Preview:           preview,
		RevenueByProduct:  TotalByProduct(records),
		RevenueByDate:     TotalByDate(records),
		QuantityByProduct: QuantityRankedByProduct(records),
		RevenueByMonth:    TotalByMonth(records),
		AvgPriceByProduct: AvgPriceByProduct(records),
		Headline:          headline,
	}, nil
}
