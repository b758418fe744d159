package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tawany-sales-analytics/infrastructure/salesource"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/reporting"
	"github.com/vfg2006/tawany-sales-analytics/internal/scheduler"
	"github.com/vfg2006/tawany-sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/tawany-sales-analytics/pkg/log"
)

func main() {
	// Inicializa configuração de logs antes de ler a configuração
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Módulo 1: coleta de dados (simulada)
	source := salesource.NewSimulatedSource(cfg)

	// Módulos 2 e 3: análise e interpretação
	analyzer := analyzing.NewService(cfg, source)

	// Módulo 4: relatórios
	reporters, err := reporting.New(cfg.Report.Format, os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}

	reportSyncService := scheduler.NewReportSyncService(analyzer, reporters, cfg)

	if !reportSyncService.Enabled() {
		if err := reportSyncService.RunReport(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar relatório de vendas")
		}
		return
	}

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de relatórios de vendas")
	}
	logrus.Info("Agendador de relatórios de vendas iniciado com sucesso")

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logrus.Info("Sinal de interrupção recebido, encerrando")
	cancel()
}
