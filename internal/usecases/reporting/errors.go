package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound    = errors.New("loja não encontrada")
	ErrNotOwner          = errors.New("usuário não administra esta loja")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ReportError é um erro dos relatórios de vendas com o código de API correspondente
type ReportError struct {
	Err     error
	Code    string
	Slug    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code, slug, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Slug:    slug,
		Details: details,
	}
}
