package leads

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/infrastructure/repository"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

// LeadManager expõe as operações de leads consumidas pela camada HTTP
type LeadManager interface {
	List() ([]domain.Lead, error)
	FindByID(id string) (*domain.Lead, error)
	Create(input domain.CreateLeadInput) (*domain.Lead, error)
	Update(input domain.UpdateLeadInput) (*domain.Lead, error)
	Delete(id string) error
}

type Service struct {
	leadRepository repository.LeadRepository
	dashboardStore *dashboard.Store
}

func NewService(leadRepo repository.LeadRepository, dashboardStore *dashboard.Store) *Service {
	return &Service{
		leadRepository: leadRepo,
		dashboardStore: dashboardStore,
	}
}

// List retorna a coleção atual e publica o snapshot no dashboard
func (s *Service) List() ([]domain.Lead, error) {
	leads, err := s.leadRepository.List()
	if err != nil {
		return nil, err
	}

	s.dashboardStore.SetLeads(leads)

	return leads, nil
}

func (s *Service) FindByID(id string) (*domain.Lead, error) {
	return s.leadRepository.FindByID(id)
}

func (s *Service) Create(input domain.CreateLeadInput) (*domain.Lead, error) {
	lead, err := s.leadRepository.Create(input)
	if err != nil {
		return nil, err
	}

	s.refreshDashboard()

	return lead, nil
}

func (s *Service) Update(input domain.UpdateLeadInput) (*domain.Lead, error) {
	lead, err := s.leadRepository.Update(input)
	if err != nil {
		return nil, err
	}

	s.refreshDashboard()

	return lead, nil
}

func (s *Service) Delete(id string) error {
	if err := s.leadRepository.Delete(id); err != nil {
		return err
	}

	s.refreshDashboard()

	return nil
}

// refreshDashboard relê a coleção após uma mutação. Falha aqui não desfaz
// a mutação já persistida, apenas deixa o snapshot defasado.
func (s *Service) refreshDashboard() {
	leads, err := s.leadRepository.List()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o snapshot de leads do dashboard")
		return
	}

	s.dashboardStore.SetLeads(leads)
}
