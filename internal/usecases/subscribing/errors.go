package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound       = errors.New("loja não encontrada")
	ErrNotOwner             = errors.New("usuário não administra esta loja")
	ErrPlanNotFound         = errors.New("plano não encontrado")
	ErrGatewayNotConfigured = errors.New("gateway de pagamento não configurado")
	ErrInvalidSignature     = errors.New("assinatura do pagamento inválida")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// SubscriptionError é um erro de assinatura com o código de API correspondente
type SubscriptionError struct {
	Err     error
	Code    string
	Slug    string
	Details string
}

func (e *SubscriptionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

func NewSubscriptionError(err error, code, slug, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     err,
		Code:    code,
		Slug:    slug,
		Details: details,
	}
}
