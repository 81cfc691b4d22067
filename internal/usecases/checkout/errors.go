package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("carrinho vazio")
	ErrInvalidQuantity   = errors.New("quantidade inválida")
	ErrTenantNotFound    = errors.New("loja não encontrada")
	ErrTenantCannotSell  = errors.New("loja não está apta a vender")
	ErrProductNotFound   = errors.New("produto não encontrado ou inativo")
	ErrOutOfStock        = errors.New("estoque insuficiente")
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateReceipt   = errors.New("erro ao gerar número do recibo")
)

// CheckoutError é um erro do checkout com o código de API e o produto envolvido
type CheckoutError struct {
	Err       error
	Code      string
	ProductID string
	Details   string
}

func (e *CheckoutError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

func NewCheckoutError(err error, code string, details string) *CheckoutError {
	return &CheckoutError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewProductCheckoutError(err error, code string, productID string) *CheckoutError {
	return &CheckoutError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   productID,
	}
}
