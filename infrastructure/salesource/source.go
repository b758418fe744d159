// Package salesource contém as fontes de registros de venda consumidas pelo pipeline de análise
package salesource

import (
	"context"

	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// SalesSource define a interface de uma fonte de registros de venda
type SalesSource interface {
	// Fetch retorna a sequência ordenada de registros de venda
	Fetch(ctx context.Context) ([]domain.SaleRecord, error)
}

// StaticSource devolve sempre os mesmos registros, informados na criação
type StaticSource struct {
	records []domain.SaleRecord
}

func NewStaticSource(records []domain.SaleRecord) *StaticSource {
	copied := make([]domain.SaleRecord, len(records))
	copy(copied, records)
	return &StaticSource{records: copied}
}

func (s *StaticSource) Fetch(ctx context.Context) ([]domain.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, len(s.records))
	copy(records, s.records)
	return records, nil
}
