package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tawany-sales-analytics/infrastructure/salesource"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

func sale(product string, quantity int, date time.Time, unitPrice string) domain.SaleRecord {
	return domain.NewSaleRecord(product, quantity, date, decimal.RequireFromString(unitPrice))
}

func day(month time.Month, d int) time.Time {
	return time.Date(2023, month, d, 0, 0, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtido %s", want, got)
}

func assertDecimalMap[K comparable](t *testing.T, want map[K]string, got map[K]decimal.Decimal) {
	t.Helper()
	require.Len(t, got, len(want))
	for key, value := range want {
		gotValue, exists := got[key]
		require.True(t, exists, "chave ausente: %v", key)
		assertDecimal(t, value, gotValue)
	}
}

func sumValues[K comparable](values map[K]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, value := range values {
		total = total.Add(value)
	}
	return total
}

// Exemplo de referência: duas vendas de pão e uma de leite
func breadAndMilk() []domain.SaleRecord {
	return []domain.SaleRecord{
		sale("Bread", 2, day(time.January, 10), "3.00"),
		sale("Milk", 1, day(time.January, 10), "4.00"),
		sale("Bread", 3, day(time.March, 5), "3.00"),
	}
}

func TestTotalByProduct(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SaleRecord
		want    map[string]string
	}{
		{
			name:    "Pão e leite - soma o valor total por produto",
			records: breadAndMilk(),
			want:    map[string]string{"Bread": "15.00", "Milk": "4.00"},
		},
		{
			name:    "Registro único",
			records: []domain.SaleRecord{sale("Coffee", 5, day(time.June, 1), "10.00")},
			want:    map[string]string{"Coffee": "50.00"},
		},
		{
			name:    "Entrada vazia - mapa vazio",
			records: nil,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalByProduct(tt.records)
			require.NotNil(t, got)
			assertDecimalMap(t, tt.want, got)
		})
	}
}

func TestTotalByDate(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Bread", 2, day(time.January, 10), "3.00"),
		// Mesmo dia em outro horário e fuso deve cair na mesma chave
		{Product: "Milk", Quantity: 1, Date: time.Date(2023, time.January, 10, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600)), UnitPrice: decimal.RequireFromString("4.00")},
		sale("Cake", 1, day(time.February, 2), "12.50"),
	}

	got := TotalByDate(records)

	assertDecimalMap(t, map[time.Time]string{
		day(time.January, 10): "10.00",
		day(time.February, 2): "12.50",
	}, got)

	assert.Empty(t, TotalByDate([]domain.SaleRecord{}))
}

func TestQuantityRankedByProduct(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SaleRecord
		want    []domain.ProductQuantity
	}{
		{
			name:    "Ordena de forma decrescente pela quantidade",
			records: breadAndMilk(),
			want: []domain.ProductQuantity{
				{Product: "Bread", Quantity: 5},
				{Product: "Milk", Quantity: 1},
			},
		},
		{
			name: "Empate mantém a ordem de primeira aparição",
			records: []domain.SaleRecord{
				sale("Cookie", 4, day(time.May, 1), "2.00"),
				sale("Cheese", 7, day(time.May, 2), "15.00"),
				sale("Cake", 4, day(time.May, 3), "9.00"),
				sale("Coffee", 3, day(time.May, 4), "11.00"),
				sale("Coffee", 1, day(time.May, 5), "11.00"),
			},
			want: []domain.ProductQuantity{
				{Product: "Cheese", Quantity: 7},
				{Product: "Cookie", Quantity: 4},
				{Product: "Cake", Quantity: 4},
				{Product: "Coffee", Quantity: 4},
			},
		},
		{
			name:    "Entrada vazia - sequência vazia",
			records: nil,
			want:    []domain.ProductQuantity{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuantityRankedByProduct(tt.records)
			assert.Equal(t, tt.want, got)

			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Quantity, got[i].Quantity)
			}
		})
	}
}

func TestTotalByMonth(t *testing.T) {
	records := breadAndMilk()

	got := TotalByMonth(records)

	assertDecimalMap(t, map[int]string{1: "10.00", 3: "9.00"}, got)
}

func TestTotalByMonth_MarchOnlyContributesToMarch(t *testing.T) {
	got := TotalByMonth([]domain.SaleRecord{sale("Cheese", 2, day(time.March, 28), "18.40")})

	require.Len(t, got, 1)
	assertDecimal(t, "36.80", got[3])
	for month := 1; month <= 12; month++ {
		if month == 3 {
			continue
		}
		_, exists := got[month]
		assert.False(t, exists, "mês %d não deveria existir", month)
	}
}

func TestAvgPriceByProduct(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SaleRecord
		want    map[string]string
	}{
		{
			name:    "Registro único",
			records: []domain.SaleRecord{sale("Coffee", 5, day(time.June, 1), "10.00")},
			want:    map[string]string{"Coffee": "10.00"},
		},
		{
			name: "Média simples do preço unitário, sem ponderar pela quantidade",
			records: []domain.SaleRecord{
				sale("Bread", 10, day(time.April, 1), "2.00"),
				sale("Bread", 1, day(time.April, 2), "4.00"),
				sale("Milk", 3, day(time.April, 3), "5.50"),
			},
			want: map[string]string{"Bread": "3.00", "Milk": "5.50"},
		},
		{
			name:    "Entrada vazia - mapa vazio",
			records: []domain.SaleRecord{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimalMap(t, tt.want, AvgPriceByProduct(tt.records))
		})
	}
}

func TestBuildHeadline(t *testing.T) {
	tests := []struct {
		name            string
		records         []domain.SaleRecord
		wantRevenue     string
		wantTopQuantity string
		wantTopRevenue  string
	}{
		{
			name:            "Pão lidera em quantidade e receita",
			records:         breadAndMilk(),
			wantRevenue:     "19.00",
			wantTopQuantity: "Bread",
			wantTopRevenue:  "Bread",
		},
		{
			name: "Líder em quantidade diferente do líder em receita",
			records: []domain.SaleRecord{
				sale("Cookie", 20, day(time.July, 1), "2.00"),
				sale("Cheese", 3, day(time.July, 2), "19.99"),
			},
			wantRevenue:     "99.97",
			wantTopQuantity: "Cookie",
			wantTopRevenue:  "Cheese",
		},
		{
			name: "Empate - vence o primeiro produto encontrado",
			records: []domain.SaleRecord{
				sale("Milk", 2, day(time.August, 1), "5.00"),
				sale("Bread", 5, day(time.August, 2), "2.00"),
				sale("Milk", 3, day(time.August, 3), "0.00"),
			},
			wantRevenue:     "20.00",
			wantTopQuantity: "Milk",
			wantTopRevenue:  "Milk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := BuildHeadline(tt.records)
			require.NoError(t, err)

			assertDecimal(t, tt.wantRevenue, report.TotalRevenue)
			assert.Equal(t, tt.wantTopQuantity, report.TopQuantityProduct)
			assert.Equal(t, tt.wantTopRevenue, report.TopRevenueProduct)
		})
	}
}

func TestBuildHeadline_EmptyInput(t *testing.T) {
	report, err := BuildHeadline(nil)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarize(t *testing.T) {
	records := breadAndMilk()

	summary, err := Summarize(records, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RecordCount)
	assert.Equal(t, records[:2], summary.Preview)
	assertDecimalMap(t, map[string]string{"Bread": "15.00", "Milk": "4.00"}, summary.RevenueByProduct)
	assertDecimalMap(t, map[int]string{1: "10.00", 3: "9.00"}, summary.RevenueByMonth)
	assert.Len(t, summary.RevenueByDate, 2)
	assert.Equal(t, "Bread", summary.QuantityByProduct[0].Product)
	assertDecimal(t, "19.00", summary.Headline.TotalRevenue)

	t.Run("Amostra maior que a entrada é limitada", func(t *testing.T) {
		summary, err := Summarize(records, 10)
		require.NoError(t, err)
		assert.Len(t, summary.Preview, 3)
	})

	t.Run("Amostra negativa vira vazia", func(t *testing.T) {
		summary, err := Summarize(records, -1)
		require.NoError(t, err)
		assert.Empty(t, summary.Preview)
	})

	t.Run("Entrada vazia falha", func(t *testing.T) {
		summary, err := Summarize(nil, 5)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestAggregations_RevenueConservation(t *testing.T) {
	source := salesource.NewSimulatedSourceWithConfig(salesource.SimulatedConfig{
		Products:     []string{"Pão", "Leite", "Queijo", "Café", "Bolo", "Biscoito"},
		RecordCount:  500,
		Year:         2023,
		MinQuantity:  1,
		MaxQuantity:  20,
		MinUnitPrice: 2,
		MaxUnitPrice: 20,
		MaxDay:       28,
		Seed:         42,
	})

	records, err := source.Fetch(context.Background())
	require.NoError(t, err)

	headline, err := BuildHeadline(records)
	require.NoError(t, err)

	assert.True(t, sumValues(TotalByProduct(records)).Equal(headline.TotalRevenue))
	assert.True(t, sumValues(TotalByDate(records)).Equal(headline.TotalRevenue))
	assert.True(t, sumValues(TotalByMonth(records)).Equal(headline.TotalRevenue))

	totalQuantity := 0
	for _, record := range records {
		totalQuantity += record.Quantity
	}
	rankedQuantity := 0
	for _, item := range QuantityRankedByProduct(records) {
		rankedQuantity += item.Quantity
	}
	assert.Equal(t, totalQuantity, rankedQuantity)
}

func TestAggregations_PureAndIdempotent(t *testing.T) {
	records := breadAndMilk()
	snapshot := make([]domain.SaleRecord, len(records))
	copy(snapshot, records)

	first, err := Summarize(records, 3)
	require.NoError(t, err)
	second, err := Summarize(records, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}
