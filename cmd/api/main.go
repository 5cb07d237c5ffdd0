package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vfg2006/seller-console-api/infrastructure/integrator/seedsource"
	"github.com/vfg2006/seller-console-api/infrastructure/repository"
	"github.com/vfg2006/seller-console-api/infrastructure/storage"
	"github.com/vfg2006/seller-console-api/internal/api"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/scheduler"
	"github.com/vfg2006/seller-console-api/internal/usecases/converting"
	"github.com/vfg2006/seller-console-api/internal/usecases/insighting"
	"github.com/vfg2006/seller-console-api/internal/usecases/leads"
	"github.com/vfg2006/seller-console-api/internal/usecases/opportunities"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.NewFileStore(afero.NewOsFs(), cfg.Storage.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de dados")
	}

	logrus.WithField("data_dir", cfg.Storage.DataDir).Info("Armazenamento de dados preparado")

	seedClient := seedsource.NewClient(cfg)

	leadRepo := repository.NewLeadRepository(store, seedClient, cfg)
	opportunityRepo := repository.NewOpportunityRepository(store, cfg)

	dashboardStore := dashboard.NewStore()

	leadService := leads.NewService(leadRepo, dashboardStore)
	opportunityService := opportunities.NewService(opportunityRepo, dashboardStore)
	convertingService := converting.NewService(leadRepo, opportunityRepo, dashboardStore)
	insightService := insighting.NewService(dashboardStore)

	metricsSnapshotService := scheduler.NewMetricsSnapshotService(
		leadService,
		opportunityService,
		insightService,
		cfg,
	)

	if err := metricsSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de métricas")
	} else {
		logrus.Info("Agendador de snapshot de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		leadService,
		opportunityService,
		convertingService,
		insightService,
		metricsSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
