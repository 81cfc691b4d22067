package storefront

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSlug            = errors.New("slug inválido")
	ErrSlugTaken              = errors.New("slug já utilizado")
	ErrMissingStoreName       = errors.New("nome da loja é obrigatório")
	ErrTenantNotFound         = errors.New("loja não encontrada")
	ErrNotOwner               = errors.New("usuário não administra esta loja")
	ErrBankNotConfigured      = errors.New("verificação bancária não configurada")
	ErrBankVerificationFailed = errors.New("conta bancária não confirmada")
	ErrBankProvider           = errors.New("erro no provedor de verificação bancária")
	ErrDatabaseOperation      = errors.New("erro ao realizar operação no banco de dados")
)

// StorefrontError é um erro da gestão de lojas com o código de API correspondente
type StorefrontError struct {
	Err     error
	Code    string
	Slug    string
	Details string
}

func (e *StorefrontError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StorefrontError) Unwrap() error {
	return e.Err
}

func NewStorefrontError(err error, code string, slug string, details string) *StorefrontError {
	return &StorefrontError{
		Err:     err,
		Code:    code,
		Slug:    slug,
		Details: details,
	}
}
