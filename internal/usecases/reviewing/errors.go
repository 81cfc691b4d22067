package reviewing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRating     = errors.New("nota deve estar entre 1 e 5")
	ErrTenantNotFound    = errors.New("loja não encontrada")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrAlreadyReviewed   = errors.New("cliente já avaliou este produto")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type ReviewError struct {
	Err       error
	Code      string
	ProductID string
	Details   string
}

func (e *ReviewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewError(err error, code, productID, details string) *ReviewError {
	return &ReviewError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
