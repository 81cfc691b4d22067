package bankverifyclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/storefront-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	ValidateAccount(ctx context.Context, params AccountValidationParams) (*AccountValidationResponse, error)
}

type BankVerifyClient struct {
	httpClient *http.Client
	config     config.BankVerification
}

func NewClient(cfg config.BankVerification) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BankVerifyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
