package dashboard

import (
	"sync"
	"time"

	"github.com/vfg2006/seller-console-api/internal/domain"
)

// Store mantém em memória a última coleção conhecida de leads e
// oportunidades. As mutações dos usecases atualizam o snapshot; as
// consultas de métricas leem apenas daqui, sem tocar a persistência.
type Store struct {
	mu sync.RWMutex

	leads         []domain.Lead
	opportunities []domain.Opportunity
	lastUpdated   *time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetLeads(leads []domain.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append([]domain.Lead(nil), leads...)
	s.stamp()
}

func (s *Store) SetOpportunities(opportunities []domain.Opportunity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opportunities = append([]domain.Opportunity(nil), opportunities...)
	s.stamp()
}

// Snapshot devolve cópias das coleções e o instante da última atualização.
// lastUpdated é nil enquanto nenhuma coleção tiver sido publicada.
func (s *Store) Snapshot() ([]domain.Lead, []domain.Opportunity, *time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leads := append([]domain.Lead(nil), s.leads...)
	opportunities := append([]domain.Opportunity(nil), s.opportunities...)

	var lastUpdated *time.Time
	if s.lastUpdated != nil {
		t := *s.lastUpdated
		lastUpdated = &t
	}

	return leads, opportunities, lastUpdated
}

func (s *Store) stamp() {
	now := time.Now().UTC()
	s.lastUpdated = &now
}
