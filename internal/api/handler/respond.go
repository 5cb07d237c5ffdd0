package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-console-api/internal/domain"
	"github.com/vfg2006/seller-console-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeDomainError traduz os erros dos usecases para a resposta padronizada.
// O código de not-found varia por entidade; o restante é comum.
func writeDomainError(w http.ResponseWriter, err error, notFoundCode string) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Dados inválidos", verrs)
		return
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		apiErrors.WriteError(w, notFoundCode, nf.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro de armazenamento ao atender a requisição")
	apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao acessar o armazenamento", nil)
}
