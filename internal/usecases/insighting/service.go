package insighting

import (
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

// Insighter deriva as métricas do snapshot corrente do dashboard.
// As consultas são puras sobre o snapshot: nenhuma chamada toca a
// persistência nem dispara seed.
type Insighter interface {
	LeadMetrics() domain.LeadMetrics
	OpportunityMetrics() domain.OpportunityMetrics
	OverallMetrics() domain.OverallMetrics
}

type Service struct {
	dashboardStore *dashboard.Store
}

func NewService(dashboardStore *dashboard.Store) *Service {
	return &Service{dashboardStore: dashboardStore}
}

func (s *Service) LeadMetrics() domain.LeadMetrics {
	leads, _, _ := s.dashboardStore.Snapshot()
	return ComputeLeadMetrics(leads)
}

func (s *Service) OpportunityMetrics() domain.OpportunityMetrics {
	leads, opportunities, _ := s.dashboardStore.Snapshot()
	return ComputeOpportunityMetrics(opportunities, leads)
}

func (s *Service) OverallMetrics() domain.OverallMetrics {
	leads, opportunities, lastUpdated := s.dashboardStore.Snapshot()
	return ComputeOverallMetrics(leads, opportunities, lastUpdated)
}
