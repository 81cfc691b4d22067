package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrSlugTaken       = errors.New("repository: slug já utilizado")
	ErrDuplicateReview = errors.New("repository: cliente já avaliou este produto")
	ErrEmailTaken      = errors.New("repository: email já cadastrado")
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
