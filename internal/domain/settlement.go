package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRequest é a confirmação de pagamento enviada pelo gateway.
// Valores ausentes (nil) mantêm o que foi calculado no checkout.
type SettlementRequest struct {
	TenantSlug       string           `json:"-"`
	OrderID          string           `json:"order_id" validate:"required,uuid"`
	GatewayOrderID   string           `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string           `json:"gateway_payment_id" validate:"required"`
	Signature        string           `json:"signature" validate:"required"`
	GrossAmount      *decimal.Decimal `json:"gross_amount,omitempty"`
	DiscountAmount   *decimal.Decimal `json:"discount_amount,omitempty"`
	SaleAmount       *decimal.Decimal `json:"sale_amount,omitempty"`
}

// FinalAmounts são os valores definitivos gravados no pedido e somados aos resumos
type FinalAmounts struct {
	GrossAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	SaleAmount     decimal.Decimal
}

// MarkPaidParams reúne os campos gravados no pedido ao liquidar
type MarkPaidParams struct {
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	PaidAt           time.Time
	Amounts          FinalAmounts
}

type SettlementResult struct {
	OrderID        string               `json:"order_id"`
	AlreadySettled bool                 `json:"already_settled"`
	Period         SalesPeriod          `json:"period"`
	Summary        *MonthlySalesSummary `json:"summary,omitempty"`
}
