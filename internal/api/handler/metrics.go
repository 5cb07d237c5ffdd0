package handler

import (
	"net/http"

	"github.com/vfg2006/seller-console-api/internal/usecases/insighting"
)

// As rotas de métricas leem apenas o snapshot em memória do dashboard.
// Nenhuma delas toca a persistência: a resposta reflete o estado publicado
// pela última operação de lead/oportunidade.

func GetLeadMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.LeadMetrics())
	})
}

func GetOpportunityMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.OpportunityMetrics())
	})
}

func GetOverallMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.OverallMetrics())
	})
}
