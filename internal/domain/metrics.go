package domain

import "time"

// LeadMetrics são as métricas derivadas da coleção de leads.
// Percentuais e médias são arredondados para o inteiro mais próximo;
// divisões por zero resultam em 0, nunca em erro.
type LeadMetrics struct {
	TotalLeads       int `json:"totalLeads"`
	NewLeads         int `json:"newLeads"`
	ContactedLeads   int `json:"contactedLeads"`
	QualifiedLeads   int `json:"qualifiedLeads"`
	UnqualifiedLeads int `json:"unqualifiedLeads"`
	AverageLeadScore int `json:"averageLeadScore"`
	ConversionRate   int `json:"conversionRate"`
}

// OpportunityMetrics são as métricas derivadas do pipeline de oportunidades.
// TotalRevenue considera apenas negócios closed-won; TotalPipelineValue soma
// os valores de todas as oportunidades.
type OpportunityMetrics struct {
	TotalOpportunities        int                      `json:"totalOpportunities"`
	TotalRevenue              float64                  `json:"totalRevenue"`
	TotalPipelineValue        float64                  `json:"totalPipelineValue"`
	AverageDealSize           int                      `json:"averageDealSize"`
	OpportunitiesByStage      map[OpportunityStage]int `json:"opportunitiesByStage"`
	OpportunityConversionRate int                      `json:"opportunityConversionRate"`
	ClosedWonCount            int                      `json:"closedWonCount"`
	WinRate                   int                      `json:"winRate"`
	ActiveOpportunities       int                      `json:"activeOpportunities"`
}

// OverallMetrics combina as métricas dos dois domínios com os indicadores
// cruzados. RevenuePerLead é mantido como número bruto para que o chamador
// faça a formatação monetária.
type OverallMetrics struct {
	Leads          LeadMetrics        `json:"leads"`
	Opportunities  OpportunityMetrics `json:"opportunities"`
	RevenuePerLead float64            `json:"revenuePerLead"`
	LastUpdated    *time.Time         `json:"lastUpdated"`
}
