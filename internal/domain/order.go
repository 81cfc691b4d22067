package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é uma compra. Nasce não paga no checkout e é alterada uma única vez na liquidação.
type Order struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenant_id"`
	CustomerID       int             `json:"customer_id"`
	ReceiptNumber    string          `json:"receipt_number"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	ShippingAmount   decimal.Decimal `json:"shipping_amount"`
	SaleAmount       decimal.Decimal `json:"sale_amount"`
	Paid             bool            `json:"paid"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	GatewayOrderID   *string         `json:"gateway_order_id,omitempty"`
	GatewayPaymentID *string         `json:"gateway_payment_id,omitempty"`
	Items            []*OrderItem    `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItem guarda uma cópia do produto no momento da compra, não uma referência viva.
type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   *string         `json:"product_id,omitempty"`
	CategoryID  *string         `json:"category_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
}

// OrderTotals é o pedido com a soma das quantidades dos itens
type OrderTotals struct {
	ID             string
	CreatedAt      time.Time
	GrossAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	SaleAmount     decimal.Decimal
	ItemsQuantity  int
}

// PaidOrderFigures são os valores de um pedido pago usados para recompor os resumos mensais
type PaidOrderFigures struct {
	GrossAmount   decimal.Decimal
	SaleAmount    decimal.Decimal
	ItemsQuantity int
}
