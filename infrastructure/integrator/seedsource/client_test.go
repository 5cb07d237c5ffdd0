package seedsource

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

func clientFor(url string) *Client {
	cfg := &config.Config{}
	cfg.Seed.LeadsURL = url
	return NewClient(cfg)
}

func TestClient_FetchLeads(t *testing.T) {
	t.Run("Resposta 200 com array JSON é deserializada", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"1","name":"Anna Smith","company":"TechCorp","email":"anna@techcorp.com","source":"web","score":85,"status":"new"}]`))
		}))
		defer server.Close()

		leads, err := clientFor(server.URL).FetchLeads()
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Anna Smith", leads[0].Name)
		assert.Equal(t, domain.LeadStatusNew, leads[0].Status)
		assert.Equal(t, 85, leads[0].Score)
	})

	t.Run("Status diferente de 200 retorna erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := clientFor(server.URL).FetchLeads()
		assert.Error(t, err)
	})

	t.Run("Corpo que não é um array JSON retorna erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"oops": true}`))
		}))
		defer server.Close()

		_, err := clientFor(server.URL).FetchLeads()
		assert.Error(t, err)
	})

	t.Run("URL não configurada retorna erro sentinela", func(t *testing.T) {
		_, err := clientFor("").FetchLeads()
		assert.ErrorIs(t, err, ErrSeedURLNotConfigured)
	})
}
