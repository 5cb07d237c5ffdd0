package repository

import "github.com/vfg2006/seller-console-api/internal/domain"

// Versão atual do formato dos dados de oportunidades. Divergência com a tag
// persistida descarta a coleção inteira e restaura o seed embutido.
const opportunitiesDataVersion = "2"

func amountOf(v float64) *float64 {
	return &v
}

// defaultLeads é o conjunto embutido usado quando a busca remota de seed
// falha ou não está configurada
func defaultLeads() []domain.Lead {
	return []domain.Lead{
		{
			ID:      "1",
			Name:    "Anna Smith",
			Company: "TechCorp",
			Email:   "anna.smith@techcorp.com",
			Source:  domain.LeadSourceWeb,
			Score:   85,
			Status:  domain.LeadStatusNew,
		},
		{
			ID:      "2",
			Name:    "Carlos Johnson",
			Company: "DataFlow",
			Email:   "carlos@dataflow.com",
			Source:  domain.LeadSourceReferral,
			Score:   92,
			Status:  domain.LeadStatusQualified,
		},
		{
			ID:      "3",
			Name:    "Marina Williams",
			Company: "CloudSys",
			Email:   "marina.williams@cloudsys.com",
			Source:  domain.LeadSourceSocial,
			Score:   78,
			Status:  domain.LeadStatusContacted,
		},
		{
			ID:      "4",
			Name:    "John Peterson",
			Company: "StartupAI",
			Email:   "john@startupai.com",
			Source:  domain.LeadSourceEmail,
			Score:   96,
			Status:  domain.LeadStatusNew,
		},
		{
			ID:      "5",
			Name:    "Lucy Brown",
			Company: "FinTech Solutions",
			Email:   "lucy@fintech.com",
			Source:  domain.LeadSourcePhone,
			Score:   74,
			Status:  domain.LeadStatusUnqualified,
		},
	}
}

// defaultOpportunities é o seed embutido do pipeline de oportunidades
func defaultOpportunities() []domain.Opportunity {
	return []domain.Opportunity{
		{
			ID:          "1",
			Name:        "TechCorp - CRM System",
			Stage:       domain.StageProposal,
			Amount:      amountOf(45000),
			AccountName: "TechCorp",
			LeadID:      "1",
		},
		{
			ID:          "2",
			Name:        "DataFlow - Analytics Platform",
			Stage:       domain.StageNegotiation,
			Amount:      amountOf(75000),
			AccountName: "DataFlow",
			LeadID:      "2",
		},
		{
			ID:          "3",
			Name:        "CloudSys - Migration Services",
			Stage:       domain.StageNeedsAnalysis,
			Amount:      amountOf(32000),
			AccountName: "CloudSys",
			LeadID:      "3",
		},
		{
			ID:          "4",
			Name:        "StartupAI - ML Pipeline",
			Stage:       domain.StageQualification,
			AccountName: "StartupAI",
			LeadID:      "4",
		},
		{
			ID:          "5",
			Name:        "FinTech Solutions - Payments Gateway",
			Stage:       domain.StageProspecting,
			Amount:      amountOf(28000),
			AccountName: "FinTech Solutions",
			LeadID:      "5",
		},
		{
			ID:          "6",
			Name:        "MegaRetail - Loyalty Program",
			Stage:       domain.StageClosedWon,
			Amount:      amountOf(120000),
			AccountName: "MegaRetail",
		},
		{
			ID:          "7",
			Name:        "HealthPlus - Patient Portal",
			Stage:       domain.StageClosedWon,
			Amount:      amountOf(60000),
			AccountName: "HealthPlus",
		},
		{
			ID:          "8",
			Name:        "LogiTrans - Fleet Tracking",
			Stage:       domain.StageClosedLost,
			Amount:      amountOf(40000),
			AccountName: "LogiTrans",
		},
	}
}
