// Package storage implementa o adaptador de persistência do console: um
// armazenamento chave-valor com semântica de local storage, um arquivo por
// chave dentro do diretório de dados configurado.
package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Chaves sob as quais as coleções serializadas ficam persistidas
const (
	LeadsKey                = "seller-console-leads"
	OpportunitiesKey        = "seller-console-opportunities"
	OpportunitiesVersionKey = "seller-console-opportunities-version"
)

// Store é o contrato consumido pelos repositórios. Cada chamada é
// independente: não há transação entre Read e Write.
type Store interface {
	// Read retorna o conteúdo bruto da chave; o booleano indica presença
	Read(key string) ([]byte, bool, error)
	// Write grava o conteúdo bruto sob a chave, sobrescrevendo o anterior
	Write(key string, data []byte) error
}

// FileStore persiste cada chave como um arquivo em um afero.Fs. Em produção
// usa o sistema de arquivos real; nos testes, um MemMapFs.
type FileStore struct {
	fs  afero.Fs
	dir string
}

func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar o diretório de dados %s", dir)
	}

	return &FileStore{fs: fs, dir: dir}, nil
}

func (s *FileStore) Read(key string) ([]byte, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "erro ao ler a chave %s", key)
	}

	return data, true, nil
}

func (s *FileStore) Write(key string, data []byte) error {
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar a chave %s", key)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
