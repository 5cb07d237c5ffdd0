package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

func TestStore_Snapshot(t *testing.T) {
	t.Run("Store recém-criado devolve coleções vazias e lastUpdated nulo", func(t *testing.T) {
		store := NewStore()

		leads, opportunities, lastUpdated := store.Snapshot()
		assert.Empty(t, leads)
		assert.Empty(t, opportunities)
		assert.Nil(t, lastUpdated)
	})

	t.Run("Publicar leads carimba lastUpdated", func(t *testing.T) {
		store := NewStore()

		store.SetLeads([]domain.Lead{{ID: "1"}})

		leads, _, lastUpdated := store.Snapshot()
		assert.Len(t, leads, 1)
		require.NotNil(t, lastUpdated)
	})

	t.Run("Cada publicação avança ou mantém o carimbo anterior", func(t *testing.T) {
		store := NewStore()

		store.SetLeads([]domain.Lead{{ID: "1"}})
		_, _, first := store.Snapshot()

		store.SetOpportunities([]domain.Opportunity{{ID: "o1"}})
		_, _, second := store.Snapshot()

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.False(t, second.Before(*first))
	})

	t.Run("Snapshot devolve cópias isoladas do estado interno", func(t *testing.T) {
		store := NewStore()
		store.SetLeads([]domain.Lead{{ID: "1", Name: "Original"}})

		leads, _, _ := store.Snapshot()
		leads[0].Name = "Mutado"

		again, _, _ := store.Snapshot()
		assert.Equal(t, "Original", again[0].Name)
	})

	t.Run("Publicação substitui a coleção inteira", func(t *testing.T) {
		store := NewStore()
		store.SetLeads([]domain.Lead{{ID: "1"}, {ID: "2"}})
		store.SetLeads([]domain.Lead{{ID: "3"}})

		leads, _, _ := store.Snapshot()
		require.Len(t, leads, 1)
		assert.Equal(t, "3", leads[0].ID)
	})
}
