package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound    = errors.New("loja não encontrada")
	ErrNotOwner          = errors.New("usuário não administra esta loja")
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrSlugTaken         = errors.New("slug já utilizado nesta loja")
	ErrInvalidPrice      = errors.New("preço inválido")
	ErrInvalidPriceRange = errors.New("faixa de preço inválida")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError é um erro do catálogo com o código de API correspondente
type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
