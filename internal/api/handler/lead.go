package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/internal/usecases/converting"
	"github.com/vfg2006/seller-console-api/internal/usecases/leads"
	"github.com/vfg2006/seller-console-api/pkg/apiErrors"
)

func LeadList(service leads.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.List()
		if err != nil {
			logrus.Error("Error listing leads:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		respondJSON(w, http.StatusOK, result)
	})
}

func GetLead(service leads.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead é obrigatório", nil)
			return
		}

		lead, err := service.FindByID(id)
		if err != nil {
			logrus.Error("Error finding lead:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		// FindByID devolve nil sem erro quando não há registro
		if lead == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado: "+id, nil)
			return
		}

		respondJSON(w, http.StatusOK, lead)
	})
}

func CreateLead(service leads.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateLead")

		var input domain.CreateLeadInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		lead, err := service.Create(input)
		if err != nil {
			logrus.Error("Error creating lead:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		respondJSON(w, http.StatusCreated, lead)
	})
}

func UpdateLead(service leads.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateLead")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead é obrigatório", nil)
			return
		}

		var input domain.UpdateLeadInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		input.ID = id

		lead, err := service.Update(input)
		if err != nil {
			logrus.Error("Error updating lead:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		respondJSON(w, http.StatusOK, lead)
	})
}

func DeleteLead(service leads.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteLead")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting lead:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ConvertLead cria uma oportunidade a partir do lead e o remove da coleção
func ConvertLead(service converting.Converter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConvertLead")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead é obrigatório", nil)
			return
		}

		var input domain.CreateOpportunityInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		opportunity, err := service.Convert(id, input)
		if err != nil {
			logrus.Error("Error converting lead:", err)
			writeDomainError(w, err, apiErrors.ErrLeadNotFound)
			return
		}

		respondJSON(w, http.StatusCreated, opportunity)
	})
}
