package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/internal/usecases/opportunities"
	"github.com/vfg2006/seller-console-api/pkg/apiErrors"
)

func OpportunityList(service opportunities.OpportunityManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.List()
		if err != nil {
			logrus.Error("Error listing opportunities:", err)
			writeDomainError(w, err, apiErrors.ErrOpportunityNotFound)
			return
		}

		respondJSON(w, http.StatusOK, result)
	})
}

func GetOpportunity(service opportunities.OpportunityManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oportunidade é obrigatório", nil)
			return
		}

		opportunity, err := service.FindByID(id)
		if err != nil {
			logrus.Error("Error finding opportunity:", err)
			writeDomainError(w, err, apiErrors.ErrOpportunityNotFound)
			return
		}

		if opportunity == nil {
			apiErrors.WriteError(w, apiErrors.ErrOpportunityNotFound, "Oportunidade não encontrada: "+id, nil)
			return
		}

		respondJSON(w, http.StatusOK, opportunity)
	})
}

func CreateOpportunity(service opportunities.OpportunityManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateOpportunity")

		var input domain.CreateOpportunityInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		opportunity, err := service.Create(input)
		if err != nil {
			logrus.Error("Error creating opportunity:", err)
			writeDomainError(w, err, apiErrors.ErrOpportunityNotFound)
			return
		}

		respondJSON(w, http.StatusCreated, opportunity)
	})
}

func UpdateOpportunity(service opportunities.OpportunityManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateOpportunity")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oportunidade é obrigatório", nil)
			return
		}

		var input domain.UpdateOpportunityInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		input.ID = id

		opportunity, err := service.Update(input)
		if err != nil {
			logrus.Error("Error updating opportunity:", err)
			writeDomainError(w, err, apiErrors.ErrOpportunityNotFound)
			return
		}

		respondJSON(w, http.StatusOK, opportunity)
	})
}

func DeleteOpportunity(service opportunities.OpportunityManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteOpportunity")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oportunidade é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting opportunity:", err)
			writeDomainError(w, err, apiErrors.ErrOpportunityNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
