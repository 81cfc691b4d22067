package settling

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData  = errors.New("dados obrigatórios ausentes")
	ErrGatewayNotConfigured = errors.New("gateway de pagamento não configurado")
	ErrInvalidSignature     = errors.New("assinatura do pagamento inválida")
	ErrTenantNotFound       = errors.New("loja não encontrada")
	ErrOrderNotFound        = errors.New("pedido não encontrado")
	ErrInvalidAmounts       = errors.New("valores do pagamento inconsistentes")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// SettlementError carrega o código de API e o pedido envolvido na liquidação
type SettlementError struct {
	Err     error
	Code    string
	OrderID string
	Details string
}

func (e *SettlementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

func NewSettlementError(err error, code string, details string) *SettlementError {
	return &SettlementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewOrderSettlementError(err error, code string, orderID string, details string) *SettlementError {
	return &SettlementError{
		Err:     err,
		Code:    code,
		OrderID: orderID,
		Details: details,
	}
}

// IsTerminal indica erros que não devem ser reenviados pelo gateway
func IsTerminal(err error) bool {
	return errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrInvalidAmounts) ||
		errors.Is(err, ErrMissingRequiredData)
}
