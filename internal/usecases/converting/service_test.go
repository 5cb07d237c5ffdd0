package converting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-console-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-console-api/internal/dashboard"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Convert(t *testing.T) {
	amount := 45000.0

	input := domain.CreateOpportunityInput{
		Name:        "TechCorp - Enterprise",
		Stage:       domain.StageProposal,
		Amount:      &amount,
		AccountName: "TechCorp",
	}

	// O input enviado ao repositório carrega o leadId do lead convertido
	expectedInput := input
	expectedInput.LeadID = "lead-1"

	created := &domain.Opportunity{
		ID:          "opp-1",
		Name:        input.Name,
		Stage:       input.Stage,
		Amount:      input.Amount,
		AccountName: input.AccountName,
		LeadID:      "lead-1",
	}

	t.Run("Conversão bem-sucedida cria a oportunidade e remove o lead uma única vez", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		leadRepo := mocks.NewMockLeadRepository(ctrl)
		opportunityRepo := mocks.NewMockOpportunityRepository(ctrl)

		opportunityRepo.EXPECT().Create(expectedInput).Return(created, nil)
		leadRepo.EXPECT().Delete("lead-1").Return(nil).Times(1)

		// Refresh do dashboard após a conversão
		leadRepo.EXPECT().List().Return([]domain.Lead{}, nil)
		opportunityRepo.EXPECT().List().Return([]domain.Opportunity{*created}, nil)

		service := NewService(leadRepo, opportunityRepo, dashboard.NewStore())

		opportunity, err := service.Convert("lead-1", input)
		require.NoError(t, err)
		assert.Equal(t, created, opportunity)
	})

	t.Run("Falha de validação na criação não remove o lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		leadRepo := mocks.NewMockLeadRepository(ctrl)
		opportunityRepo := mocks.NewMockOpportunityRepository(ctrl)

		validationErr := domain.ValidationErrors{
			{Field: "amount", Message: "must be positive"},
		}
		opportunityRepo.EXPECT().Create(gomock.Any()).Return(nil, validationErr)
		// Nenhuma expectativa em leadRepo: o lead fica intacto

		service := NewService(leadRepo, opportunityRepo, dashboard.NewStore())

		_, err := service.Convert("lead-1", input)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Falha na remoção do lead deixa a oportunidade criada e retorna o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		leadRepo := mocks.NewMockLeadRepository(ctrl)
		opportunityRepo := mocks.NewMockOpportunityRepository(ctrl)

		opportunityRepo.EXPECT().Create(expectedInput).Return(created, nil)
		leadRepo.EXPECT().Delete("lead-1").Return(errors.New("falha de escrita")).Times(1)

		// Mesmo na falha o snapshot é republicado com o estado real
		leadRepo.EXPECT().List().Return([]domain.Lead{{ID: "lead-1"}}, nil)
		opportunityRepo.EXPECT().List().Return([]domain.Opportunity{*created}, nil)

		store := dashboard.NewStore()
		service := NewService(leadRepo, opportunityRepo, store)

		_, err := service.Convert("lead-1", input)
		require.Error(t, err)

		// O estado reflete as duas entidades coexistindo: não há rollback
		leads, opportunities, _ := store.Snapshot()
		assert.Len(t, leads, 1)
		assert.Len(t, opportunities, 1)
	})
}
