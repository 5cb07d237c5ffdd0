package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFileStore(fs, "/data")
	require.NoError(t, err)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "Chave inexistente retorna ausente sem erro",
			run: func(t *testing.T) {
				data, ok, err := store.Read("unknown-key")
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Nil(t, data)
			},
		},
		{
			name: "Escrita seguida de leitura devolve o mesmo conteúdo",
			run: func(t *testing.T) {
				payload := []byte(`[{"id":"1"}]`)
				require.NoError(t, store.Write(LeadsKey, payload))

				data, ok, err := store.Read(LeadsKey)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, payload, data)
			},
		},
		{
			name: "Escrita sobrescreve o valor anterior da chave",
			run: func(t *testing.T) {
				require.NoError(t, store.Write(OpportunitiesVersionKey, []byte("1")))
				require.NoError(t, store.Write(OpportunitiesVersionKey, []byte("2")))

				data, ok, err := store.Read(OpportunitiesVersionKey)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, []byte("2"), data)
			},
		},
		{
			name: "Chaves diferentes não interferem entre si",
			run: func(t *testing.T) {
				require.NoError(t, store.Write(LeadsKey, []byte("leads")))
				require.NoError(t, store.Write(OpportunitiesKey, []byte("opps")))

				data, ok, err := store.Read(LeadsKey)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, []byte("leads"), data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestNewFileStore_CriaDiretorio(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := NewFileStore(fs, "/nested/data/dir")
	require.NoError(t, err)

	exists, err := afero.DirExists(fs, "/nested/data/dir")
	require.NoError(t, err)
	assert.True(t, exists)
}
