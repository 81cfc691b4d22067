package domain

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Tenant é a loja de um vendedor dentro da plataforma. Nunca é removido fisicamente.
type Tenant struct {
	ID                   string             `json:"id"`
	Slug                 string             `json:"slug"`
	StoreName            string             `json:"store_name"`
	Template             string             `json:"template"`
	OwnerUserID          int                `json:"owner_user_id"`
	BankAccountNumber    *string            `json:"bank_account_number,omitempty"`
	BankIFSC             *string            `json:"bank_ifsc,omitempty"`
	BankAccountHolder    *string            `json:"bank_account_holder,omitempty"`
	BankVerified         bool               `json:"bank_verified"`
	BankVerifiedAt       *time.Time         `json:"bank_verified_at,omitempty"`
	PaymentAccountID     *string            `json:"payment_account_id,omitempty"`
	SubscriptionStatus   SubscriptionStatus `json:"subscription_status"`
	SubscriptionPlanID   *string            `json:"subscription_plan_id,omitempty"`
	SubscriptionRenewsAt *time.Time         `json:"subscription_renews_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// CanSell indica se a loja pode receber pedidos: conta bancária verificada e assinatura ativa
func (t *Tenant) CanSell() bool {
	return t.BankVerified && t.SubscriptionStatus == SubscriptionActive
}

// ManagedBy indica se o usuário autenticado pode administrar a loja
func (t *Tenant) ManagedBy(claims *Claims) bool {
	if claims == nil {
		return false
	}
	return claims.IsAdmin() || claims.UserID == t.OwnerUserID
}

// PublicTenant é a projeção exposta na vitrine, sem dados bancários
type PublicTenant struct {
	Slug      string `json:"slug"`
	StoreName string `json:"store_name"`
	Template  string `json:"template"`
	Open      bool   `json:"open"`
}

func (t *Tenant) Public() *PublicTenant {
	return &PublicTenant{
		Slug:      t.Slug,
		StoreName: t.StoreName,
		Template:  t.Template,
		Open:      t.CanSell(),
	}
}

type CreateTenantRequest struct {
	Slug      string `json:"slug" validate:"required,min=3,max=63"`
	StoreName string `json:"store_name" validate:"required,max=120"`
	Template  string `json:"template" validate:"omitempty,max=40"`
}
