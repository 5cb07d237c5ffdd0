package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-console-api/infrastructure/storage"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

func TestOpportunityRepository_VersaoDoFormato(t *testing.T) {
	t.Run("Armazenamento vazio recebe o seed e a tag de versão atual", func(t *testing.T) {
		store := newTestStore(t)
		repo := NewOpportunityRepository(store, testConfig())

		opportunities, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, opportunities, len(defaultOpportunities()))

		version, ok, err := store.Read(storage.OpportunitiesVersionKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, opportunitiesDataVersion, string(version))
	})

	t.Run("Tag desatualizada descarta a coleção inteira, incluindo registros do usuário", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Write(storage.OpportunitiesVersionKey, []byte("1")))
		require.NoError(t, store.Write(storage.OpportunitiesKey, []byte(`[{"id":"user-1","name":"Negócio do usuário","stage":"proposal","accountName":"UserCo"}]`)))

		repo := NewOpportunityRepository(store, testConfig())

		opportunities, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, opportunities, len(defaultOpportunities()))

		for _, opportunity := range opportunities {
			assert.NotEqual(t, "user-1", opportunity.ID)
		}

		version, ok, err := store.Read(storage.OpportunitiesVersionKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, opportunitiesDataVersion, string(version))
	})

	t.Run("Tag atual preserva a coleção persistida", func(t *testing.T) {
		store := newTestStore(t)
		repo := NewOpportunityRepository(store, testConfig())

		created, err := repo.Create(domain.CreateOpportunityInput{
			Name:        "Negócio novo",
			Stage:       domain.StageProspecting,
			AccountName: "NewCo",
		})
		require.NoError(t, err)

		again := NewOpportunityRepository(store, testConfig())
		opportunities, err := again.List()
		require.NoError(t, err)

		ids := make([]string, 0, len(opportunities))
		for _, opportunity := range opportunities {
			ids = append(ids, opportunity.ID)
		}
		assert.Contains(t, ids, created.ID)
	})
}

func TestOpportunityRepository_Create(t *testing.T) {
	amount := 45000.0
	negative := -1.0
	zero := 0.0

	tests := []struct {
		name    string
		input   domain.CreateOpportunityInput
		wantErr bool
	}{
		{
			name: "Oportunidade com valor positivo é aceita",
			input: domain.CreateOpportunityInput{
				Name:        "TechCorp - Enterprise",
				Stage:       domain.StageProposal,
				Amount:      &amount,
				AccountName: "TechCorp",
			},
		},
		{
			name: "Valor ausente significa não estimado e é aceito",
			input: domain.CreateOpportunityInput{
				Name:        "StartupAI - Piloto",
				Stage:       domain.StageQualification,
				AccountName: "StartupAI",
			},
		},
		{
			name: "Valor zero é rejeitado",
			input: domain.CreateOpportunityInput{
				Name:        "Zerada",
				Stage:       domain.StageProspecting,
				Amount:      &zero,
				AccountName: "ZeroCo",
			},
			wantErr: true,
		},
		{
			name: "Valor negativo é rejeitado",
			input: domain.CreateOpportunityInput{
				Name:        "Negativa",
				Stage:       domain.StageProspecting,
				Amount:      &negative,
				AccountName: "NegCo",
			},
			wantErr: true,
		},
		{
			name: "Estágio desconhecido é rejeitado",
			input: domain.CreateOpportunityInput{
				Name:        "Estágio inválido",
				Stage:       domain.OpportunityStage("won"),
				AccountName: "StageCo",
			},
			wantErr: true,
		},
		{
			name: "Referência a lead inexistente é aceita sem verificação",
			input: domain.CreateOpportunityInput{
				Name:        "Órfã",
				Stage:       domain.StageProspecting,
				AccountName: "OrphanCo",
				LeadID:      "lead-que-nao-existe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewOpportunityRepository(newTestStore(t), testConfig())

			opportunity, err := repo.Create(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, opportunity)
			assert.NotEmpty(t, opportunity.ID)
			assert.Equal(t, tt.input.LeadID, opportunity.LeadID)
		})
	}
}

func TestOpportunityRepository_UpdateDelete(t *testing.T) {
	repo := NewOpportunityRepository(newTestStore(t), testConfig())

	amount := 30000.0
	created, err := repo.Create(domain.CreateOpportunityInput{
		Name:        "CloudSys - Expansão",
		Stage:       domain.StageNeedsAnalysis,
		Amount:      &amount,
		AccountName: "CloudSys",
	})
	require.NoError(t, err)

	t.Run("Atualização parcial preserva os campos não informados", func(t *testing.T) {
		stage := domain.StageClosedWon
		updated, err := repo.Update(domain.UpdateOpportunityInput{
			ID:    created.ID,
			Stage: &stage,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.StageClosedWon, updated.Stage)
		assert.Equal(t, created.Name, updated.Name)
		require.NotNil(t, updated.Amount)
		assert.Equal(t, amount, *updated.Amount)
	})

	t.Run("ID desconhecido retorna not found", func(t *testing.T) {
		name := "novo nome"
		_, err := repo.Update(domain.UpdateOpportunityInput{ID: "missing", Name: &name})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Delete remove o registro", func(t *testing.T) {
		require.NoError(t, repo.Delete(created.ID))

		found, err := repo.FindByID(created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestOpportunityRepository_OperacoesConcorrentes(t *testing.T) {
	repo := NewOpportunityRepository(newTestStore(t), testConfig())

	// A primeira listagem semeia o pipeline; as goroutines disputam
	// registros distintos do seed
	seeded, err := repo.List()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(seeded), 2)

	firstID := seeded[0].ID
	secondID := seeded[1].ID

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for amount := 1000.0; amount <= 20000.0; amount += 1000.0 {
			a := amount
			_, err := repo.Update(domain.UpdateOpportunityInput{ID: firstID, Amount: &a})
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		stages := []domain.OpportunityStage{
			domain.StageNegotiation,
			domain.StageClosedWon,
		}
		for i := 0; i < 20; i++ {
			st := stages[i%len(stages)]
			_, err := repo.Update(domain.UpdateOpportunityInput{ID: secondID, Stage: &st})
			assert.NoError(t, err)
		}
	}()

	wg.Wait()

	foundFirst, err := repo.FindByID(firstID)
	require.NoError(t, err)
	require.NotNil(t, foundFirst)
	require.NotNil(t, foundFirst.Amount)
	assert.Equal(t, 20000.0, *foundFirst.Amount)

	foundSecond, err := repo.FindByID(secondID)
	require.NoError(t, err)
	require.NotNil(t, foundSecond)
	assert.Equal(t, domain.StageClosedWon, foundSecond.Stage)

	opportunities, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, opportunities, len(seeded))
}

func TestOpportunityRepository_DadosCorrompidos(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Write(storage.OpportunitiesVersionKey, []byte(opportunitiesDataVersion)))
	require.NoError(t, store.Write(storage.OpportunitiesKey, []byte("{not json")))

	repo := NewOpportunityRepository(store, testConfig())

	_, err := repo.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao deserializar as oportunidades persistidas")
}
