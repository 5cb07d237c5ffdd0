package opportunities

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/infrastructure/repository"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

// OpportunityManager expõe as operações de oportunidades consumidas pela camada HTTP
type OpportunityManager interface {
	List() ([]domain.Opportunity, error)
	FindByID(id string) (*domain.Opportunity, error)
	Create(input domain.CreateOpportunityInput) (*domain.Opportunity, error)
	Update(input domain.UpdateOpportunityInput) (*domain.Opportunity, error)
	Delete(id string) error
}

type Service struct {
	opportunityRepository repository.OpportunityRepository
	dashboardStore        *dashboard.Store
}

func NewService(opportunityRepo repository.OpportunityRepository, dashboardStore *dashboard.Store) *Service {
	return &Service{
		opportunityRepository: opportunityRepo,
		dashboardStore:        dashboardStore,
	}
}

// List retorna a coleção atual e publica o snapshot no dashboard
func (s *Service) List() ([]domain.Opportunity, error) {
	opportunities, err := s.opportunityRepository.List()
	if err != nil {
		return nil, err
	}

	s.dashboardStore.SetOpportunities(opportunities)

	return opportunities, nil
}

func (s *Service) FindByID(id string) (*domain.Opportunity, error) {
	return s.opportunityRepository.FindByID(id)
}

func (s *Service) Create(input domain.CreateOpportunityInput) (*domain.Opportunity, error) {
	opportunity, err := s.opportunityRepository.Create(input)
	if err != nil {
		return nil, err
	}

	s.refreshDashboard()

	return opportunity, nil
}

func (s *Service) Update(input domain.UpdateOpportunityInput) (*domain.Opportunity, error) {
	opportunity, err := s.opportunityRepository.Update(input)
	if err != nil {
		return nil, err
	}

	s.refreshDashboard()

	return opportunity, nil
}

func (s *Service) Delete(id string) error {
	if err := s.opportunityRepository.Delete(id); err != nil {
		return err
	}

	s.refreshDashboard()

	return nil
}

func (s *Service) refreshDashboard() {
	opportunities, err := s.opportunityRepository.List()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o snapshot de oportunidades do dashboard")
		return
	}

	s.dashboardStore.SetOpportunities(opportunities)
}
