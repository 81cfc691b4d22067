package domain

type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	TenantSlug string         `json:"-"`
	CustomerID int            `json:"-"`
	Items      []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}
