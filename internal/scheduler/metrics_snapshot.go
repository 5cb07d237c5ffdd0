package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/usecases/insighting"
	"github.com/vfg2006/seller-console-api/internal/usecases/leads"
	"github.com/vfg2006/seller-console-api/internal/usecases/opportunities"
	"github.com/vfg2006/seller-console-api/pkg/utils"
)

// MetricsSnapshotConfig representa a configuração do agendador de snapshot de métricas
type MetricsSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MetricsSnapshotService recarrega periodicamente as coleções de leads e
// oportunidades e loga as métricas derivadas do snapshot resultante
type MetricsSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSnapshotConfig
	leadService         leads.LeadManager
	opportunityService  opportunities.OpportunityManager
	insighter           insighting.Insighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetricsSnapshotService cria uma nova instância do serviço de snapshot de métricas
func NewMetricsSnapshotService(
	leadService leads.LeadManager,
	opportunityService opportunities.OpportunityManager,
	insighter insighting.Insighter,
	appConfig *config.Config,
) *MetricsSnapshotService {
	snapshotConfig := MetricsSnapshotConfig{
		CronSchedule: appConfig.MetricsSnapshot.CronSchedule,
		SyncEnabled:  appConfig.MetricsSnapshot.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de métricas carregada")

	return &MetricsSnapshotService{
		scheduler:          scheduler,
		config:             snapshotConfig,
		leadService:        leadService,
		opportunityService: opportunityService,
		insighter:          insighter,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *MetricsSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot periódico de métricas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshot de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMetricsSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMetricsSnapshot recarrega as duas coleções e loga as métricas gerais
func (s *MetricsSnapshotService) syncMetricsSnapshot() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot periódico de métricas")

	if _, err := s.leadService.List(); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar leads para o snapshot de métricas")
		return
	}

	if _, err := s.opportunityService.List(); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar oportunidades para o snapshot de métricas")
		return
	}

	overall := s.insighter.OverallMetrics()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":             duration.String(),
		"total_leads":          overall.Leads.TotalLeads,
		"qualified_leads":      overall.Leads.QualifiedLeads,
		"conversion_rate":      overall.Leads.ConversionRate,
		"total_opportunities":  overall.Opportunities.TotalOpportunities,
		"total_revenue":        overall.Opportunities.TotalRevenue,
		"total_pipeline_value": overall.Opportunities.TotalPipelineValue,
		"win_rate":             overall.Opportunities.WinRate,
		"revenue_per_lead":     utils.RoundWithTwoDecimalPlace(overall.RevenuePerLead),
	}).Info("Snapshot periódico de métricas concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um snapshot de métricas
func (s *MetricsSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de métricas")
	go s.syncMetricsSnapshot()
}

// GetStatus retorna o status atual do agendador. Os carimbos de tempo são
// lidos sob o mesmo mutex que protege as escritas do sync.
func (s *MetricsSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
