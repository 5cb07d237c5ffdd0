package opportunities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-console-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_PublicaDashboard(t *testing.T) {
	amount := 45000.0

	input := domain.CreateOpportunityInput{
		Name:        "TechCorp - Enterprise",
		Stage:       domain.StageProposal,
		Amount:      &amount,
		AccountName: "TechCorp",
	}

	created := &domain.Opportunity{
		ID:          "opp-1",
		Name:        input.Name,
		Stage:       input.Stage,
		Amount:      input.Amount,
		AccountName: input.AccountName,
	}

	t.Run("Create publica a coleção atualizada no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOpportunityRepository(ctrl)
		repo.EXPECT().Create(input).Return(created, nil)
		repo.EXPECT().List().Return([]domain.Opportunity{*created}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		opportunity, err := service.Create(input)
		require.NoError(t, err)
		assert.Equal(t, created, opportunity)

		_, opportunities, lastUpdated := store.Snapshot()
		assert.Len(t, opportunities, 1)
		assert.NotNil(t, lastUpdated)
	})

	t.Run("Falha no Create não publica nada no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOpportunityRepository(ctrl)
		repo.EXPECT().Create(gomock.Any()).Return(nil, domain.ValidationErrors{
			{Field: "amount", Message: "must be positive"},
		})

		store := dashboard.NewStore()
		service := NewService(repo, store)

		_, err := service.Create(domain.CreateOpportunityInput{})
		require.Error(t, err)

		_, _, lastUpdated := store.Snapshot()
		assert.Nil(t, lastUpdated)
	})

	t.Run("List publica o resultado no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOpportunityRepository(ctrl)
		repo.EXPECT().List().Return([]domain.Opportunity{*created}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		opportunities, err := service.List()
		require.NoError(t, err)
		assert.Len(t, opportunities, 1)

		_, published, _ := store.Snapshot()
		assert.Equal(t, opportunities, published)
	})

	t.Run("Update republica a coleção com o registro mesclado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stage := domain.StageClosedWon
		merged := *created
		merged.Stage = stage

		repo := mocks.NewMockOpportunityRepository(ctrl)
		repo.EXPECT().Update(domain.UpdateOpportunityInput{ID: created.ID, Stage: &stage}).Return(&merged, nil)
		repo.EXPECT().List().Return([]domain.Opportunity{merged}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		updated, err := service.Update(domain.UpdateOpportunityInput{ID: created.ID, Stage: &stage})
		require.NoError(t, err)
		assert.Equal(t, domain.StageClosedWon, updated.Stage)

		_, published, _ := store.Snapshot()
		require.Len(t, published, 1)
		assert.Equal(t, domain.StageClosedWon, published[0].Stage)
	})

	t.Run("Delete republica a coleção restante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOpportunityRepository(ctrl)
		repo.EXPECT().Delete("opp-1").Return(nil)
		repo.EXPECT().List().Return([]domain.Opportunity{}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		require.NoError(t, service.Delete("opp-1"))

		_, published, lastUpdated := store.Snapshot()
		assert.Empty(t, published)
		assert.NotNil(t, lastUpdated)
	})
}
