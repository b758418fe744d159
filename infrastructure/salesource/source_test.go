package salesource

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

func defaultSimulation(seed uint64) SimulatedConfig {
	return SimulatedConfig{
		Products:     []string{"Pão", "Leite", "Queijo", "Café", "Bolo", "Biscoito"},
		RecordCount:  100,
		Year:         2023,
		MinQuantity:  1,
		MaxQuantity:  20,
		MinUnitPrice: 2,
		MaxUnitPrice: 20,
		MaxDay:       28,
		Seed:         seed,
	}
}

func TestSimulatedSource_Fetch(t *testing.T) {
	source := NewSimulatedSourceWithConfig(defaultSimulation(7))

	records, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 100)

	catalog := map[string]bool{}
	for _, product := range defaultSimulation(7).Products {
		catalog[product] = true
	}

	minPrice := decimal.NewFromInt(2)
	maxPrice := decimal.NewFromInt(20)

	for _, record := range records {
		assert.True(t, catalog[record.Product], "produto fora do catálogo: %s", record.Product)
		assert.GreaterOrEqual(t, record.Quantity, 1)
		assert.LessOrEqual(t, record.Quantity, 20)

		assert.Equal(t, 2023, record.Date.Year())
		assert.GreaterOrEqual(t, record.Date.Day(), 1)
		assert.LessOrEqual(t, record.Date.Day(), 28)
		assert.Equal(t, time.UTC, record.Date.Location())

		assert.True(t, record.UnitPrice.GreaterThanOrEqual(minPrice), "preço abaixo do mínimo: %s", record.UnitPrice)
		assert.True(t, record.UnitPrice.LessThanOrEqual(maxPrice), "preço acima do máximo: %s", record.UnitPrice)
		assert.LessOrEqual(t, -record.UnitPrice.Exponent(), int32(2), "preço com mais de duas casas: %s", record.UnitPrice)

		assert.True(t, record.TotalValue().Equal(record.UnitPrice.Mul(decimal.NewFromInt(int64(record.Quantity)))))
	}
}

func TestSimulatedSource_SameSeedIsReproducible(t *testing.T) {
	first, err := NewSimulatedSourceWithConfig(defaultSimulation(2023)).Fetch(context.Background())
	require.NoError(t, err)

	second, err := NewSimulatedSourceWithConfig(defaultSimulation(2023)).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulatedSource_Errors(t *testing.T) {
	t.Run("Catálogo vazio", func(t *testing.T) {
		cfg := defaultSimulation(1)
		cfg.Products = nil

		records, err := NewSimulatedSourceWithConfig(cfg).Fetch(context.Background())
		assert.Nil(t, records)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("Contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		records, err := NewSimulatedSourceWithConfig(defaultSimulation(1)).Fetch(ctx)
		assert.Nil(t, records)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Zero registros", func(t *testing.T) {
		cfg := defaultSimulation(1)
		cfg.RecordCount = 0

		records, err := NewSimulatedSourceWithConfig(cfg).Fetch(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestNewSimulatedSource_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Simulation: config.Simulation{
			Products:     []string{"Café"},
			RecordCount:  3,
			Year:         2024,
			MinQuantity:  5,
			MaxQuantity:  5,
			MinUnitPrice: 10,
			MaxUnitPrice: 10,
			MaxDay:       1,
			Seed:         99,
		},
	}

	records, err := NewSimulatedSource(cfg).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, record := range records {
		assert.Equal(t, "Café", record.Product)
		assert.Equal(t, 5, record.Quantity)
		assert.Equal(t, 2024, record.Date.Year())
		assert.Equal(t, 1, record.Date.Day())
		assert.True(t, record.TotalValue().Equal(decimal.NewFromInt(50)))
	}
}

func TestStaticSource_Fetch(t *testing.T) {
	input := []domain.SaleRecord{
		domain.NewSaleRecord("Bread", 2, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("3.00")),
		domain.NewSaleRecord("Milk", 1, time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("4.00")),
	}

	source := NewStaticSource(input)
	input[0].Product = "alterado"

	records, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bread", records[0].Product)

	records[1].Product = "alterado"
	again, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Milk", again[1].Product)
}
