package insighting

import (
	"time"

	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/pkg/utils"
)

// ComputeLeadMetrics deriva as métricas da coleção de leads. Coleção vazia
// produz zeros em tudo, nunca erro.
func ComputeLeadMetrics(leads []domain.Lead) domain.LeadMetrics {
	metrics := domain.LeadMetrics{
		TotalLeads: len(leads),
	}

	scoreSum := 0
	for _, lead := range leads {
		scoreSum += lead.Score

		switch lead.Status {
		case domain.LeadStatusNew:
			metrics.NewLeads++
		case domain.LeadStatusContacted:
			metrics.ContactedLeads++
		case domain.LeadStatusQualified:
			metrics.QualifiedLeads++
		case domain.LeadStatusUnqualified:
			metrics.UnqualifiedLeads++
		}
	}

	if metrics.TotalLeads > 0 {
		metrics.AverageLeadScore = utils.RoundToInt(float64(scoreSum) / float64(metrics.TotalLeads))
	}

	metrics.ConversionRate = utils.RoundPercent(metrics.QualifiedLeads, metrics.TotalLeads)

	return metrics
}

// ComputeOpportunityMetrics deriva as métricas do pipeline. A coleção de
// leads entra apenas para a taxa de conversão de oportunidades, que usa o
// total de leads qualificados como denominador.
func ComputeOpportunityMetrics(opportunities []domain.Opportunity, leads []domain.Lead) domain.OpportunityMetrics {
	metrics := domain.OpportunityMetrics{
		TotalOpportunities:   len(opportunities),
		OpportunitiesByStage: make(map[domain.OpportunityStage]int),
	}

	closedLost := 0
	for _, opportunity := range opportunities {
		metrics.OpportunitiesByStage[opportunity.Stage]++

		amount := 0.0
		if opportunity.Amount != nil {
			amount = *opportunity.Amount
		}

		metrics.TotalPipelineValue += amount

		switch opportunity.Stage {
		case domain.StageClosedWon:
			metrics.ClosedWonCount++
			metrics.TotalRevenue += amount
		case domain.StageClosedLost:
			closedLost++
		}
	}

	// Ticket médio: receita sobre fechados quando há closed-won, senão o
	// pipeline inteiro sobre o total
	switch {
	case metrics.ClosedWonCount > 0:
		metrics.AverageDealSize = utils.RoundToInt(metrics.TotalRevenue / float64(metrics.ClosedWonCount))
	case metrics.TotalOpportunities > 0:
		metrics.AverageDealSize = utils.RoundToInt(metrics.TotalPipelineValue / float64(metrics.TotalOpportunities))
	}

	metrics.WinRate = utils.RoundPercent(metrics.ClosedWonCount, metrics.ClosedWonCount+closedLost)

	qualifiedLeads := 0
	for _, lead := range leads {
		if lead.Status == domain.LeadStatusQualified {
			qualifiedLeads++
		}
	}
	metrics.OpportunityConversionRate = utils.RoundPercent(metrics.ClosedWonCount, qualifiedLeads)

	metrics.ActiveOpportunities = metrics.TotalOpportunities - metrics.ClosedWonCount - closedLost

	return metrics
}

// ComputeOverallMetrics combina os dois domínios. RevenuePerLead fica sem
// arredondamento; lastUpdated vem do snapshot, não do instante do cálculo.
func ComputeOverallMetrics(leads []domain.Lead, opportunities []domain.Opportunity, lastUpdated *time.Time) domain.OverallMetrics {
	leadMetrics := ComputeLeadMetrics(leads)
	opportunityMetrics := ComputeOpportunityMetrics(opportunities, leads)

	revenuePerLead := 0.0
	if leadMetrics.TotalLeads > 0 {
		revenuePerLead = opportunityMetrics.TotalRevenue / float64(leadMetrics.TotalLeads)
	}

	return domain.OverallMetrics{
		Leads:          leadMetrics,
		Opportunities:  opportunityMetrics,
		RevenuePerLead: revenuePerLead,
		LastUpdated:    lastUpdated,
	}
}
