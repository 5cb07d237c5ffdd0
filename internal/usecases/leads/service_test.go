package leads

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
	input := domain.CreateLeadInput{
		Name:    "Lead 1",
		Company: "Company 1",
		Email:   "lead1@co1.com",
		Source:  domain.LeadSourceWeb,
		Score:   80,
		Status:  domain.LeadStatusNew,
	}

	created := &domain.Lead{
		ID:      "lead-1",
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Source:  input.Source,
		Score:   input.Score,
		Status:  input.Status,
	}

	t.Run("Create publica a coleção atualizada no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLeadRepository(ctrl)
		repo.EXPECT().Create(input).Return(created, nil)
		repo.EXPECT().List().Return([]domain.Lead{*created}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		lead, err := service.Create(input)
		require.NoError(t, err)
		assert.Equal(t, created, lead)

		leads, _, lastUpdated := store.Snapshot()
		assert.Len(t, leads, 1)
		assert.NotNil(t, lastUpdated)
	})

	t.Run("Falha no Create não publica nada no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLeadRepository(ctrl)
		repo.EXPECT().Create(gomock.Any()).Return(nil, domain.ValidationErrors{
			{Field: "email", Message: "is invalid"},
		})

		store := dashboard.NewStore()
		service := NewService(repo, store)

		_, err := service.Create(domain.CreateLeadInput{})
		require.Error(t, err)

		_, _, lastUpdated := store.Snapshot()
		assert.Nil(t, lastUpdated)
	})

	t.Run("List publica o resultado no dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLeadRepository(ctrl)
		repo.EXPECT().List().Return([]domain.Lead{*created}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		leads, err := service.List()
		require.NoError(t, err)
		assert.Len(t, leads, 1)

		published, _, _ := store.Snapshot()
		assert.Equal(t, leads, published)
	})

	t.Run("Delete republica a coleção restante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockLeadRepository(ctrl)
		repo.EXPECT().Delete("lead-1").Return(nil)
		repo.EXPECT().List().Return([]domain.Lead{}, nil)

		store := dashboard.NewStore()
		service := NewService(repo, store)

		require.NoError(t, service.Delete("lead-1"))

		published, _, lastUpdated := store.Snapshot()
		assert.Empty(t, published)
		assert.NotNil(t, lastUpdated)
	})
}
