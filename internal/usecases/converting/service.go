package converting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/infrastructure/repository"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

// Converter transforma um lead em oportunidade
type Converter interface {
	Convert(leadID string, input domain.CreateOpportunityInput) (*domain.Opportunity, error)
}

type Service struct {
	leadRepository        repository.LeadRepository
	opportunityRepository repository.OpportunityRepository
	dashboardStore        *dashboard.Store
}

func NewService(
	leadRepo repository.LeadRepository,
	opportunityRepo repository.OpportunityRepository,
	dashboardStore *dashboard.Store,
) *Service {
	return &Service{
		leadRepository:        leadRepo,
		opportunityRepository: opportunityRepo,
		dashboardStore:        dashboardStore,
	}
}

// Convert cria a oportunidade e em seguida remove o lead de origem. As duas
// escritas não são atômicas: se a criação falhar o lead fica intacto, mas se
// a remoção falhar a oportunidade já criada permanece e o lead também — o
// chamador recebe o erro e o estado fica com as duas entidades coexistindo.
// Não há rollback da oportunidade.
func (s *Service) Convert(leadID string, input domain.CreateOpportunityInput) (*domain.Opportunity, error) {
	input.LeadID = leadID

	opportunity, err := s.opportunityRepository.Create(input)
	if err != nil {
		return nil, err
	}

	if err := s.leadRepository.Delete(leadID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"lead_id":        leadID,
			"opportunity_id": opportunity.ID,
		}).Warn("Oportunidade criada mas o lead de origem não foi removido")

		s.refreshDashboard()

		return nil, err
	}

	s.refreshDashboard()

	return opportunity, nil
}

// refreshDashboard republica as duas coleções, já que a conversão muda ambas
func (s *Service) refreshDashboard() {
	leads, err := s.leadRepository.List()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o snapshot de leads do dashboard")
	} else {
		s.dashboardStore.SetLeads(leads)
	}

	opportunities, err := s.opportunityRepository.List()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o snapshot de oportunidades do dashboard")
	} else {
		s.dashboardStore.SetOpportunities(opportunities)
	}
}
