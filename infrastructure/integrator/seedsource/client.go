// Package seedsource busca o conjunto inicial de leads em um recurso JSON
// remoto. Qualquer falha é recuperada localmente pelo repositório com o
// conjunto embutido; nunca chega ao chamador como erro.
package seedsource

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/seller-console-api/internal/config"
	"github.com/vfg2006/seller-console-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrSeedURLNotConfigured = errors.New("seed URL not configured")

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		url: cfg.Seed.LeadsURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchLeads faz um GET na origem configurada esperando um array JSON de
// leads. Não há retry: falha de transporte ou status diferente de 200
// retorna erro para o repositório decidir o fallback.
func (c *Client) FetchLeads() ([]domain.Lead, error) {
	if c.url == "" {
		return nil, ErrSeedURLNotConfigured
	}

	data, err := c.fetch()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar seed de leads")
	}

	var leads []domain.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar seed de leads")
	}

	logrus.WithField("quantity", len(leads)).Debug("Seed de leads recebido da origem remota")

	return leads, nil
}

func (c *Client) fetch() ([]byte, error) {
	resp, err := c.httpClient.Get(c.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("origem de seed respondeu %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
