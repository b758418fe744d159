package analyzing

import (
	"context"

	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_analyzer.go -package=mocks

// Analyzer define a interface para obter o resumo de vendas de uma execução
type Analyzer interface {
	// Summarize busca os registros na fonte configurada e calcula todas as agregações
	Summarize(ctx context.Context) (*domain.SalesSummary, error)
}
