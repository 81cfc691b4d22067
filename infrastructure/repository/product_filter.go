package repository

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/storefront-api/internal/domain"
)

const (
	defaultProductPageSize = 24
	maxProductPageSize     = 100
)

// ProductFilter descreve uma busca no catálogo. Apenas os campos preenchidos viram condição.
type ProductFilter struct {
	TenantID   string
	CategoryID *string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	InStock    bool
	ActiveOnly bool
	Sort       domain.ProductSort
	Limit      uint64
	Offset     uint64
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (f ProductFilter) Predicate() squirrel.Sqlizer {
	predicate := squirrel.And{squirrel.Eq{"tenant_id": f.TenantID}}

	if f.CategoryID != nil {
		predicate = append(predicate, squirrel.Eq{"category_id": *f.CategoryID})
	}

	if f.MinPrice != nil {
		predicate = append(predicate, squirrel.GtOrEq{"price": *f.MinPrice})
	}

	if f.MaxPrice != nil {
		predicate = append(predicate, squirrel.LtOrEq{"price": *f.MaxPrice})
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		predicate = append(predicate, squirrel.ILike{"name": "%" + likeEscaper.Replace(search) + "%"})
	}

	if f.InStock {
		predicate = append(predicate, squirrel.Gt{"stock": 0})
	}

	if f.ActiveOnly {
		predicate = append(predicate, squirrel.Eq{"active": true})
	}

	return predicate
}

func (f ProductFilter) OrderBy() []string {
	switch f.Sort {
	case domain.SortPriceAsc:
		return []string{"price ASC", "name ASC"}
	case domain.SortPriceDesc:
		return []string{"price DESC", "name ASC"}
	case domain.SortName:
		return []string{"name ASC"}
	default:
		return []string{"created_at DESC", "name ASC"}
	}
}

func (f ProductFilter) PageSize() uint64 {
	if f.Limit == 0 {
		return defaultProductPageSize
	}
	if f.Limit > maxProductPageSize {
		return maxProductPageSize
	}
	return f.Limit
}
