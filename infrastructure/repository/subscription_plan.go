package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/internal/domain"
)

//go:generate mockgen -source=subscription_plan.go -destination=mocks/subscription_plan_mock.go -package=mocks

const subscriptionPlansTable = "subscription_plans"

type SubscriptionPlanRepository interface {
	ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	GetByCode(ctx context.Context, code string) (*domain.SubscriptionPlan, error)
}

type subscriptionPlanRepository struct {
	conn postgres.Queryer
}

func NewSubscriptionPlanRepository(conn postgres.Queryer) SubscriptionPlanRepository {
	return &subscriptionPlanRepository{
		conn: conn,
	}
}

func (r *subscriptionPlanRepository) ListActive(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	query, args, err := squirrel.
		Select("id", "code", "name", "monthly_price", "product_limit", "active").
		From(subscriptionPlansTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("monthly_price ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar planos: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.SubscriptionPlan, 0)
	for rows.Next() {
		plan := &domain.SubscriptionPlan{}
		if err := rows.Scan(&plan.ID, &plan.Code, &plan.Name, &plan.MonthlyPrice, &plan.ProductLimit, &plan.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear plano: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

func (r *subscriptionPlanRepository) GetByCode(ctx context.Context, code string) (*domain.SubscriptionPlan, error) {
	query, args, err := squirrel.
		Select("id", "code", "name", "monthly_price", "product_limit", "active").
		From(subscriptionPlansTable).
		Where(squirrel.Eq{"code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan := &domain.SubscriptionPlan{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&plan.ID, &plan.Code, &plan.Name, &plan.MonthlyPrice, &plan.ProductLimit, &plan.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar plano: %w", err)
	}

	return plan, nil
}
