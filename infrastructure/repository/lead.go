package repository

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/infrastructure/storage"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LeadSeeder busca o conjunto inicial de leads em uma origem remota
type LeadSeeder interface {
	FetchLeads() ([]domain.Lead, error)
}

type LeadRepository interface {
	List() ([]domain.Lead, error)
	Create(input domain.CreateLeadInput) (*domain.Lead, error)
	Update(input domain.UpdateLeadInput) (*domain.Lead, error)
	Delete(id string) error
	FindByID(id string) (*domain.Lead, error)
}

type leadRepository struct {
	store   storage.Store
	seeder  LeadSeeder
	latency config.Latency

	// Serializa as operações, fazendo o papel do event loop single-threaded
	// do console original. Não há atomicidade entre registros além disso:
	// escritas independentes no mesmo registro seguem last-write-wins.
	mu sync.Mutex
}

func NewLeadRepository(store storage.Store, seeder LeadSeeder, cfg *config.Config) LeadRepository {
	return &leadRepository{
		store:   store,
		seeder:  seeder,
		latency: cfg.Latency,
	}
}

// List retorna a coleção persistida; quando vazia, busca o seed remoto
// (com fallback para o conjunto embutido), persiste e retorna o resultado.
// Uma segunda chamada nunca refaz o seed.
func (r *leadRepository) List() ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.LeadList)

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	if len(leads) > 0 {
		return leads, nil
	}

	seed := r.seedLeads()
	if err := r.save(seed); err != nil {
		return nil, err
	}

	return seed, nil
}

func (r *leadRepository) Create(input domain.CreateLeadInput) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.LeadCreate)

	// Valida antes de qualquer mutação
	if errs := domain.ValidateCreateLead(input); len(errs) > 0 {
		return nil, errs
	}

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do lead")
	}

	lead := domain.Lead{
		ID:      id,
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Source:  input.Source,
		Score:   input.Score,
		Status:  input.Status,
	}

	leads = append(leads, lead)
	if err := r.save(leads); err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *leadRepository) Update(input domain.UpdateLeadInput) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.LeadUpdate)

	if errs := domain.ValidateUpdateLead(input); len(errs) > 0 {
		return nil, errs
	}

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range leads {
		if leads[i].ID == input.ID {
			index = i
			break
		}
	}

	if index == -1 {
		return nil, &domain.NotFoundError{Entity: "lead", ID: input.ID}
	}

	merged := input.ApplyTo(leads[index])
	leads[index] = merged

	if err := r.save(leads); err != nil {
		return nil, err
	}

	return &merged, nil
}

func (r *leadRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.LeadDelete)

	leads, err := r.load()
	if err != nil {
		return err
	}

	remaining := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.ID != id {
			remaining = append(remaining, lead)
		}
	}

	if len(remaining) == len(leads) {
		return &domain.NotFoundError{Entity: "lead", ID: id}
	}

	return r.save(remaining)
}

// FindByID retorna nil sem erro quando o lead não existe
func (r *leadRepository) FindByID(id string) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulateLatency(r.latency.LeadFind)

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range leads {
		if leads[i].ID == id {
			lead := leads[i]
			return &lead, nil
		}
	}

	return nil, nil
}

// seedLeads busca o seed remoto; qualquer falha cai no conjunto embutido
// sem retry e sem repassar o erro ao chamador
func (r *leadRepository) seedLeads() []domain.Lead {
	if r.seeder != nil {
		leads, err := r.seeder.FetchLeads()
		if err == nil && len(leads) > 0 {
			logrus.WithField("quantity", len(leads)).Info("Leads carregados da origem remota de seed")
			return leads
		}

		if err != nil {
			logrus.WithError(err).Warn("Falha ao buscar seed remoto de leads, usando o conjunto embutido")
		}
	}

	return defaultLeads()
}

// load deserializa a coleção persistida. Conteúdo corrompido propaga o erro
// de parse: diferente do seed remoto, não há fallback aqui.
func (r *leadRepository) load() ([]domain.Lead, error) {
	raw, ok, err := r.store.Read(storage.LeadsKey)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	var leads []domain.Lead
	if err := json.Unmarshal(raw, &leads); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar os leads persistidos")
	}

	return leads, nil
}

func (r *leadRepository) save(leads []domain.Lead) error {
	raw, err := json.Marshal(leads)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar os leads")
	}

	return r.store.Write(storage.LeadsKey, raw)
}

func (r *leadRepository) simulateLatency(d time.Duration) {
	if r.latency.Enabled {
		time.Sleep(d)
	}
}
