package domain

import (
	"fmt"
	"net/mail"
)

// LeadStatus representa o estado de qualificação de um lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
)

// IsValid verifica se o status informado é um dos valores aceitos
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified:
		return true
	}
	return false
}

// LeadSource representa a origem pela qual o lead chegou
type LeadSource string

const (
	LeadSourceWeb      LeadSource = "web"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceSocial   LeadSource = "social"
	LeadSourceEmail    LeadSource = "email"
	LeadSourcePhone    LeadSource = "phone"
	LeadSourceOther    LeadSource = "other"
)

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWeb, LeadSourceReferral, LeadSourceSocial, LeadSourceEmail, LeadSourcePhone, LeadSourceOther:
		return true
	}
	return false
}

// Lead é um potencial cliente com score e status de qualificação.
// Um lead persistido sempre tem todos os campos preenchidos.
type Lead struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Company string     `json:"company"`
	Email   string     `json:"email"`
	Source  LeadSource `json:"source"`
	Score   int        `json:"score"`
	Status  LeadStatus `json:"status"`
}

// CreateLeadInput contém os campos para criação de um lead (o ID é gerado pelo repositório)
type CreateLeadInput struct {
	Name    string     `json:"name"`
	Company string     `json:"company"`
	Email   string     `json:"email"`
	Source  LeadSource `json:"source"`
	Score   int        `json:"score"`
	Status  LeadStatus `json:"status"`
}

// UpdateLeadInput é o patch de atualização parcial: todos os campos são
// opcionais exceto o ID. Campos nulos são mantidos como estão no registro.
type UpdateLeadInput struct {
	ID      string      `json:"id"`
	Name    *string     `json:"name,omitempty"`
	Company *string     `json:"company,omitempty"`
	Email   *string     `json:"email,omitempty"`
	Source  *LeadSource `json:"source,omitempty"`
	Score   *int        `json:"score,omitempty"`
	Status  *LeadStatus `json:"status,omitempty"`
}

// ApplyTo mescla o patch sobre o lead existente campo a campo,
// preservando os campos não informados
func (in UpdateLeadInput) ApplyTo(lead Lead) Lead {
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Company != nil {
		lead.Company = *in.Company
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.Score != nil {
		lead.Score = *in.Score
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	return lead
}

// ValidateCreateLead valida os campos de criação antes de qualquer mutação
func ValidateCreateLead(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if err := validateLeadName(input.Name); err != nil {
		errs = append(errs, *err)
	}
	if err := validateLeadCompany(input.Company); err != nil {
		errs = append(errs, *err)
	}
	if err := validateLeadEmail(input.Email); err != nil {
		errs = append(errs, *err)
	}
	if err := validateLeadSource(input.Source); err != nil {
		errs = append(errs, *err)
	}
	if err := validateLeadScore(input.Score); err != nil {
		errs = append(errs, *err)
	}
	if err := validateLeadStatus(input.Status); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

// ValidateUpdateLead valida apenas os campos presentes no patch
func ValidateUpdateLead(input UpdateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if input.ID == "" {
		errs = append(errs, ValidationError{Field: "id", Message: "is required"})
	}
	if input.Name != nil {
		if err := validateLeadName(*input.Name); err != nil {
			errs = append(errs, *err)
		}
	}
	if input.Company != nil {
		if err := validateLeadCompany(*input.Company); err != nil {
			errs = append(errs, *err)
		}
	}
	if input.Email != nil {
		if err := validateLeadEmail(*input.Email); err != nil {
			errs = append(errs, *err)
		}
	}
	if input.Source != nil {
		if err := validateLeadSource(*input.Source); err != nil {
			errs = append(errs, *err)
		}
	}
	if input.Score != nil {
		if err := validateLeadScore(*input.Score); err != nil {
			errs = append(errs, *err)
		}
	}
	if input.Status != nil {
		if err := validateLeadStatus(*input.Status); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

func validateLeadName(name string) *ValidationError {
	if name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

func validateLeadCompany(company string) *ValidationError {
	if company == "" {
		return &ValidationError{Field: "company", Message: "is required"}
	}
	return nil
}

func validateLeadEmail(email string) *ValidationError {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "is invalid"}
	}
	return nil
}

func validateLeadSource(source LeadSource) *ValidationError {
	if !source.IsValid() {
		return &ValidationError{Field: "source", Message: fmt.Sprintf("unknown source %q", string(source))}
	}
	return nil
}

func validateLeadScore(score int) *ValidationError {
	if score < 0 || score > 100 {
		return &ValidationError{Field: "score", Message: "must be between 0 and 100"}
	}
	return nil
}

func validateLeadStatus(status LeadStatus) *ValidationError {
	if !status.IsValid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", string(status))}
	}
	return nil
}
