package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionPlan struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	ProductLimit int             `json:"product_limit"`
	Active       bool            `json:"active"`
}

// SubscribeRequest confirma o pagamento da assinatura de um plano
type SubscribeRequest struct {
	PlanCode         string `json:"plan_code" validate:"required"`
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
}

type ActivateSubscriptionParams struct {
	TenantID string
	PlanID   string
	RenewsAt time.Time
}

// Subscription é a assinatura vigente de uma loja após a confirmação do pagamento
type Subscription struct {
	TenantID string             `json:"tenant_id"`
	PlanCode string             `json:"plan_code"`
	Status   SubscriptionStatus `json:"status"`
	RenewsAt time.Time          `json:"renews_at"`
}
