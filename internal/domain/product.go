package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID             string           `json:"id"`
	TenantID       string           `json:"tenant_id"`
	CategoryID     *string          `json:"category_id,omitempty"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	Stock          int              `json:"stock"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ListPrice é o preço "de" do produto: o preço comparativo quando maior que o preço de venda
func (p *Product) ListPrice() decimal.Decimal {
	if p.CompareAtPrice != nil && p.CompareAtPrice.GreaterThan(p.Price) {
		return *p.CompareAtPrice
	}
	return p.Price
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=80"`
	Slug string `json:"slug" validate:"required,max=80"`
}

type CreateProductRequest struct {
	CategoryID     *string          `json:"category_id" validate:"omitempty,uuid"`
	Name           string           `json:"name" validate:"required,max=160"`
	Slug           string           `json:"slug" validate:"required,max=160"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	Stock          int              `json:"stock" validate:"gte=0"`
}

// ProductSort define a ordenação da listagem do catálogo
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
)
