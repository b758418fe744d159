package analyzing

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/tawany-sales-analytics/infrastructure/salesource"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
	"github.com/vfg2006/tawany-sales-analytics/pkg/log"
	"github.com/vfg2006/tawany-sales-analytics/pkg/utils"
)

// Service implementa Analyzer sobre uma fonte de registros de venda
type Service struct {
	source      salesource.SalesSource
	previewSize int
	now         func() time.Time
	generateID  func() (string, error)
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config, source salesource.SalesSource) Analyzer {
	return &Service{
		source:      source,
		previewSize: cfg.Report.PreviewSize,
		now:         time.Now,
		generateID:  utils.GenerateReportID,
	}
}

// Summarize busca os registros e monta o resumo de vendas
func (s *Service) Summarize(ctx context.Context) (*domain.SalesSummary, error) {
	logger := log.ForContext(ctx)

	records, err := s.source.Fetch(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar registros de venda")
		return nil, NewAnalysisError(pkgerrors.Wrap(err, "error fetching sale records"), StageFetch, "")
	}

	logger.WithField("records", len(records)).Info("Dados de vendas coletados")

	summary, err := Summarize(records, s.previewSize)
	if err != nil {
		if errors.Is(err, ErrEmptyInput) {
			logger.Warn("Nenhum registro de venda para analisar")
		}
		return nil, NewAnalysisError(err, StageSummarize, "")
	}

	reportID, err := s.generateID()
	if err != nil {
		return nil, NewAnalysisError(pkgerrors.Wrap(err, "error generating report ID"), StageSummarize, "")
	}

	summary.ID = reportID
	summary.RunID = log.GetRunID(ctx)
	summary.GeneratedAt = s.now()

	logger.WithFields(log.Fields{
		"report_id":     summary.ID,
		"products":      len(summary.RevenueByProduct),
		"days":          len(summary.RevenueByDate),
		"months":        len(summary.RevenueByMonth),
		"total_revenue": summary.Headline.TotalRevenue.StringFixed(2),
	}).Info("Análise de vendas concluída")

	return summary, nil
}
