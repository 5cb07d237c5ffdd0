package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/infrastructure/storage"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/pkg/utils"
)

type OpportunityRepository interface {
	List() ([]domain.Opportunity, error)
	Create(input domain.CreateOpportunityInput) (*domain.Opportunity, error)
	Update(input domain.UpdateOpportunityInput) (*domain.Opportunity, error)
	Delete(id string) error
	FindByID(id string) (*domain.Opportunity, error)
}

type opportunityRepository struct {
	store   storage.Store
	latency config.Latency

	mu sync.Mutex
}

func NewOpportunityRepository(store storage.Store, cfg *config.Config) OpportunityRepository {
	return &opportunityRepository{
		store:   store,
		latency: cfg.Latency,
	}
}

func (r *opportunityRepository) List() ([]domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.OpportunityList)

	return r.load()
}

func (r *opportunityRepository) Create(input domain.CreateOpportunityInput) (*domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.OpportunityCreate)

	// Valida antes de qualquer mutação
	if errs := domain.ValidateCreateOpportunity(input); len(errs) > 0 {
		return nil, errs
	}

	opportunities, err := r.load()
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da oportunidade")
	}

	opportunity := domain.Opportunity{
		ID:          id,
		Name:        input.Name,
		Stage:       input.Stage,
		Amount:      input.Amount,
		AccountName: input.AccountName,
		LeadID:      input.LeadID,
	}

	opportunities = append(opportunities, opportunity)
	if err := r.save(opportunities); err != nil {
		return nil, err
	}

	return &opportunity, nil
}

func (r *opportunityRepository) Update(input domain.UpdateOpportunityInput) (*domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.OpportunityUpdate)

	if errs := domain.ValidateUpdateOpportunity(input); len(errs) > 0 {
		return nil, errs
	}

	opportunities, err := r.load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range opportunities {
		if opportunities[i].ID == input.ID {
			index = i
			break
		}
	}

	if index == -1 {
		return nil, &domain.NotFoundError{Entity: "opportunity", ID: input.ID}
	}

	merged := input.ApplyTo(opportunities[index])
	opportunities[index] = merged

	if err := r.save(opportunities); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (r *opportunityRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.OpportunityDelete)

	opportunities, err := r.load()
	if err != nil {
		return err
	}

	remaining := make([]domain.Opportunity, 0, len(opportunities))
	for _, opportunity := range opportunities {
		if opportunity.ID != id {
			remaining = append(remaining, opportunity)
		}
	}

	if len(remaining) == len(opportunities) {
		return &domain.NotFoundError{Entity: "opportunity", ID: id}
	}

	return r.save(remaining)
}

// FindByID retorna nil sem erro quando a oportunidade não existe
func (r *opportunityRepository) FindByID(id string) (*domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.OpportunityFind)

	opportunities, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range opportunities {
		if opportunities[i].ID == id {
			opportunity := opportunities[i]
			return &opportunity, nil
		}
	}

	return nil, nil
}

// load verifica a tag de versão do formato em toda leitura: tag ausente ou
// divergente descarta a coleção persistida inteira (incluindo registros
// criados pelo usuário) e restaura o seed embutido com a tag atual. É a
// estratégia de migração bruta herdada do console original.
func (r *opportunityRepository) load() ([]domain.Opportunity, error) {
	version, ok, err := r.store.Read(storage.OpportunitiesVersionKey)
	if err != nil {
		return nil, err
	}

	if !ok || string(version) != opportunitiesDataVersion {
		logrus.WithFields(logrus.Fields{
			"stored_version":  string(version),
			"current_version": opportunitiesDataVersion,
		}).Info("Versão do formato de oportunidades desatualizada, restaurando o seed embutido")

		return r.reset()
	}

	raw, ok, err := r.store.Read(storage.OpportunitiesKey)
	if err != nil {
		return nil, err
	}

	if !ok {
		// Tag válida sem coleção: regrava o seed
		return r.reset()
	}

	var opportunities []domain.Opportunity
	if err := json.Unmarshal(raw, &opportunities); err != nil {
		// Conteúdo corrompido propaga o erro de parse, sem fallback
		return nil, errors.Wrap(err, "erro ao deserializar as oportunidades persistidas")
	}

	return opportunities, nil
}

func (r *opportunityRepository) reset() ([]domain.Opportunity, error) {
	seed := defaultOpportunities()

	if err := r.save(seed); err != nil {
		return nil, err
	}

	if err := r.store.Write(storage.OpportunitiesVersionKey, []byte(opportunitiesDataVersion)); err != nil {
		return nil, err
	}

	return seed, nil
}

func (r *opportunityRepository) save(opportunities []domain.Opportunity) error {
	raw, err := json.Marshal(opportunities)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar as oportunidades")
	}

	return r.store.Write(storage.OpportunitiesKey, raw)
}

func (r *opportunityRepository) simulateLatency(d time.Duration) {
	if r.latency.Enabled {
		time.Sleep(d)
	}
}
