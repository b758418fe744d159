// Package scheduler contém os serviços de agendamento do pipeline de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
	"github.com/vfg2006/tawany-sales-analytics/internal/reporting"
	"github.com/vfg2006/tawany-sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/tawany-sales-analytics/pkg/log"
)

// ErrReportRunning indica que já existe uma execução do relatório em andamento
var ErrReportRunning = errors.New("report run already in progress")

type ReportSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportSyncService executa o pipeline coleta → análise → relatório, uma
// única vez ou de acordo com o agendamento configurado
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	reporters           []reporting.Reporter
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportID        string
	lastError           error
}

func NewReportSyncService(
	analyzer analyzing.Analyzer,
	reporters []reporting.Reporter,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule,
		Enabled:      cfg.ReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
		"reporters":     len(reporters),
	}).Debug("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		analyzer:  analyzer,
		reporters: reporters,
		config:    syncConfig,
	}
}

// Enabled indica se o relatório deve rodar agendado
func (s *ReportSyncService) Enabled() bool {
	return s.config.Enabled
}

// Start agenda o relatório no cron configurado. O agendador é parado quando o
// contexto é cancelado.
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de relatórios de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de relatórios de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReport(ctx); err != nil && !errors.Is(err, ErrReportRunning) {
			logrus.WithError(err).Error("Erro na execução agendada do relatório de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de relatórios de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport executa o pipeline completo. Execuções sobrepostas são recusadas
// com ErrReportRunning.
func (s *ReportSyncService) RunReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Relatório de vendas já está em execução")
		return ErrReportRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, runID := log.WithRunID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando relatório de vendas")

	summary, err := s.run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if summary != nil {
		s.lastReportID = summary.ID
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Relatório de vendas falhou")
		return err
	}

	logger.WithFields(log.Fields{
		"report_id": summary.ID,
		"run_id":    runID,
	}).Info("Relatório de vendas concluído")

	return nil
}

func (s *ReportSyncService) run(ctx context.Context) (*domain.SalesSummary, error) {
	summary, err := s.analyzer.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	for _, reporter := range s.reporters {
		if err := reporter.Render(ctx, summary); err != nil {
			return summary, errors.Wrap(err, "erro ao apresentar relatório de vendas")
		}
	}

	return summary, nil
}

// TriggerManualSync inicia manualmente uma execução do relatório em background
func (s *ReportSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do relatório de vendas")
	go func() {
		if err := s.RunReport(ctx); err != nil && !errors.Is(err, ErrReportRunning) {
			logrus.WithError(err).Error("Erro na execução manual do relatório de vendas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_id":         s.lastReportID,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
