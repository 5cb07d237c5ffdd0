package domain

import "fmt"

// OpportunityStage representa a posição da oportunidade no pipeline de vendas.
// closed-won e closed-lost são estágios terminais no sentido de negócio; a
// camada de dados não impede transições a partir deles.
type OpportunityStage string

const (
	StageProspecting   OpportunityStage = "prospecting"
	StageQualification OpportunityStage = "qualification"
	StageNeedsAnalysis OpportunityStage = "needs-analysis"
	StageProposal      OpportunityStage = "proposal"
	StageNegotiation   OpportunityStage = "negotiation"
	StageClosedWon     OpportunityStage = "closed-won"
	StageClosedLost    OpportunityStage = "closed-lost"
)

func (s OpportunityStage) IsValid() bool {
	switch s {
	case StageProspecting, StageQualification, StageNeedsAnalysis,
		StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// IsClosed indica se o estágio é terminal (ganho ou perdido)
func (s OpportunityStage) IsClosed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// Opportunity é um negócio no pipeline de vendas. Amount ausente significa
// "sem estimativa", não zero. LeadID é apenas informativo: o lead de origem
// pode ser removido sem invalidar a referência.
type Opportunity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Stage       OpportunityStage `json:"stage"`
	Amount      *float64         `json:"amount,omitempty"`
	AccountName string           `json:"accountName"`
	LeadID      string           `json:"leadId,omitempty"`
}

// CreateOpportunityInput contém os campos para criação de uma oportunidade
type CreateOpportunityInput struct {
	Name        string           `json:"name"`
	Stage       OpportunityStage `json:"stage"`
	Amount      *float64         `json:"amount,omitempty"`
	AccountName string           `json:"accountName"`
	LeadID      string           `json:"leadId,omitempty"`
}

// UpdateOpportunityInput é o patch de atualização parcial de uma oportunidade
type UpdateOpportunityInput struct {
	ID          string            `json:"id"`
	Name        *string           `json:"name,omitempty"`
	Stage       *OpportunityStage `json:"stage,omitempty"`
	Amount      *float64          `json:"amount,omitempty"`
	AccountName *string           `json:"accountName,omitempty"`
	LeadID      *string           `json:"leadId,omitempty"`
}

// ApplyTo mescla o patch sobre a oportunidade existente campo a campo
func (in UpdateOpportunityInput) ApplyTo(opp Opportunity) Opportunity {
	if in.Name != nil {
		opp.Name = *in.Name
	}
	if in.Stage != nil {
		opp.Stage = *in.Stage
	}
	if in.Amount != nil {
		opp.Amount = in.Amount
	}
	if in.AccountName != nil {
		opp.AccountName = *in.AccountName
	}
	if in.LeadID != nil {
		opp.LeadID = *in.LeadID
	}
	return opp
}

// ValidateCreateOpportunity valida os campos de criação antes de qualquer mutação
func ValidateCreateOpportunity(input CreateOpportunityInput) ValidationErrors {
	var errs ValidationErrors

	if input.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	}
	if input.AccountName == "" {
		errs = append(errs, ValidationError{Field: "accountName", Message: "is required"})
	}
	if err := validateStage(input.Stage); err != nil {
		errs = append(errs, *err)
	}
	if err := validateAmount(input.Amount); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

// ValidateUpdateOpportunity valida apenas os campos presentes no patch
func ValidateUpdateOpportunity(input UpdateOpportunityInput) ValidationErrors {
	var errs ValidationErrors

	if input.ID == "" {
		errs = append(errs, ValidationError{Field: "id", Message: "is required"})
	}
	if input.Name != nil && *input.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	}
	if input.AccountName != nil && *input.AccountName == "" {
		errs = append(errs, ValidationError{Field: "accountName", Message: "is required"})
	}
	if input.Stage != nil {
		if err := validateStage(*input.Stage); err != nil {
			errs = append(errs, *err)
		}
	}
	if err := validateAmount(input.Amount); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

func validateStage(stage OpportunityStage) *ValidationError {
	if !stage.IsValid() {
		return &ValidationError{Field: "stage", Message: fmt.Sprintf("unknown stage %q", string(stage))}
	}
	return nil
}

// validateAmount rejeita valores não positivos; amount ausente é aceito
func validateAmount(amount *float64) *ValidationError {
	if amount != nil && *amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	return nil
}
