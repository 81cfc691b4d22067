// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=tenant.go -destination=mocks/tenant_mock.go -package=mocks

const tenantsTable = "tenants"

var tenantColumns = []string{
	"id",
	"slug",
	"store_name",
	"template",
	"owner_user_id",
	"bank_account_number",
	"bank_ifsc",
	"bank_account_holder",
	"bank_verified",
	"bank_verified_at",
	"payment_account_id",
	"subscription_status",
	"subscription_plan_id",
	"subscription_renews_at",
	"created_at",
	"updated_at",
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	ListByOwner(ctx context.Context, ownerUserID int) ([]*domain.Tenant, error)
	ListIDs(ctx context.Context) ([]string, error)
	UpdateBankDetails(ctx context.Context, tenantID string, details domain.BankDetailsRequest) error
	MarkBankVerified(ctx context.Context, tenantID, paymentAccountID string, verifiedAt time.Time) error
	ActivateSubscription(ctx context.Context, params domain.ActivateSubscriptionParams) error
	ExpireLapsedSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

type tenantRepository struct {
	conn postgres.Queryer
}

func NewTenantRepository(conn postgres.Queryer) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	if tenant.SubscriptionStatus == "" {
		tenant.SubscriptionStatus = domain.SubscriptionInactive
	}

	query, args, err := squirrel.
		Insert(tenantsTable).
		Columns("id", "slug", "store_name", "template", "owner_user_id", "subscription_status").
		Values(tenant.ID, tenant.Slug, tenant.StoreName, tenant.Template, tenant.OwnerUserID, tenant.SubscriptionStatus).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("erro ao inserir loja: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *tenantRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select(tenantColumns...).
		From(tenantsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tenant, err := scanTenant(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) ListByOwner(ctx context.Context, ownerUserID int) ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select(tenantColumns...).
		From(tenantsTable).
		Where(squirrel.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) ListIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("id").
		From(tenantsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id da loja: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// UpdateBankDetails grava os dados bancários e zera a verificação anterior
func (r *tenantRepository) UpdateBankDetails(ctx context.Context, tenantID string, details domain.BankDetailsRequest) error {
	query, args, err := squirrel.
		Update(tenantsTable).
		Set("bank_account_number", details.AccountNumber).
		Set("bank_ifsc", details.IFSC).
		Set("bank_account_holder", details.AccountHolder).
		Set("bank_verified", false).
		Set("bank_verified_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *tenantRepository) MarkBankVerified(ctx context.Context, tenantID, paymentAccountID string, verifiedAt time.Time) error {
	query, args, err := squirrel.
		Update(tenantsTable).
		Set("bank_verified", true).
		Set("bank_verified_at", verifiedAt).
		Set("payment_account_id", paymentAccountID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *tenantRepository) ActivateSubscription(ctx context.Context, params domain.ActivateSubscriptionParams) error {
	query, args, err := squirrel.
		Update(tenantsTable).
		Set("subscription_status", domain.SubscriptionActive).
		Set("subscription_plan_id", params.PlanID).
		Set("subscription_renews_at", params.RenewsAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": params.TenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOne(ctx, query, args...)
}

// ExpireLapsedSubscriptions move para past_due as assinaturas ativas vencidas
func (r *tenantRepository) ExpireLapsedSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(tenantsTable).
		Set("subscription_status", domain.SubscriptionPastDue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"subscription_status": domain.SubscriptionActive}).
		Where(squirrel.Lt{"subscription_renews_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao expirar assinaturas: %w", err)
	}

	return result.RowsAffected()
}

func (r *tenantRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar loja: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTenant(row scanner) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	err := row.Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.StoreName,
		&tenant.Template,
		&tenant.OwnerUserID,
		&tenant.BankAccountNumber,
		&tenant.BankIFSC,
		&tenant.BankAccountHolder,
		&tenant.BankVerified,
		&tenant.BankVerifiedAt,
		&tenant.PaymentAccountID,
		&tenant.SubscriptionStatus,
		&tenant.SubscriptionPlanID,
		&tenant.SubscriptionRenewsAt,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}
