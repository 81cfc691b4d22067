// Package bankverify integra com o provedor de validação de contas bancárias dos vendedores.
package bankverify

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify/bankverifyclient"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

var ErrNotConfigured = errors.New("bankverify: provedor não configurado")

type BankVerifier interface {
	Verify(ctx context.Context, details domain.BankDetailsRequest) (*domain.BankVerificationResult, error)
}

type BankVerifyService struct {
	accessToken string
	Client      bankverifyclient.Client
}

func New(accessToken string, client bankverifyclient.Client) BankVerifier {
	return &BankVerifyService{
		accessToken: accessToken,
		Client:      client,
	}
}

// Verify consulta o provedor. A conta só é considerada verificada quando o titular confere.
func (s *BankVerifyService) Verify(ctx context.Context, details domain.BankDetailsRequest) (*domain.BankVerificationResult, error) {
	if s.accessToken == "" {
		return nil, ErrNotConfigured
	}

	resp, err := s.Client.ValidateAccount(ctx, bankverifyclient.AccountValidationParams{
		AccountNumber: strings.TrimSpace(details.AccountNumber),
		IFSC:          strings.ToUpper(strings.TrimSpace(details.IFSC)),
		Name:          strings.TrimSpace(details.AccountHolder),
	})
	if err != nil {
		return nil, err
	}

	return &domain.BankVerificationResult{
		Verified:         resp.Status == bankverifyclient.StatusVerified && resp.NameMatch,
		NameMatch:        resp.NameMatch,
		RegisteredName:   resp.RegisteredName,
		Reference:        resp.ReferenceID,
		PaymentAccountID: resp.FundAccountID,
	}, nil
}
