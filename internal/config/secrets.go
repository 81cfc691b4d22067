package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Nome do secret file no Render que guarda a chave do gateway de pagamento
const PaymentSecretFileName = "payment_key_secret"

type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:  config.Render.APIKey,
		BaseURL: strings.TrimRight(config.Render.BaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, serviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: erro ao listar secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string, len(response))
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = strings.TrimSpace(sf.SecretFile.Content)
	}

	return secretsMap, nil
}

// LoadPaymentSecret completa a chave do gateway a partir do Render quando ela
// não foi definida por variável de ambiente. Sem service id nada é feito.
func (c *Config) LoadPaymentSecret(ctx context.Context, storage SecretStorage) error {
	if c.Payment.KeySecret != "" || c.Render.ServiceID == "" {
		return nil
	}

	secrets, err := storage.ListSecrets(ctx, c.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: erro ao buscar secrets do Render: %w", err)
	}

	secret, ok := secrets[PaymentSecretFileName]
	if !ok || secret == "" {
		logrus.Warn("Secret do gateway de pagamento não encontrado no Render")
		return nil
	}

	c.Payment.KeySecret = secret
	logrus.Info("Secret do gateway de pagamento carregado do Render")
	return nil
}
