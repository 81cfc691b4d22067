package settling

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/payment"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Settler interface {
	Settle(ctx context.Context, req domain.SettlementRequest) (*domain.SettlementResult, error)
}

type Service struct {
	tenantRepo  repository.TenantRepository
	orderRepo   repository.OrderRepository
	summaryRepo repository.SalesSummaryRepository
	transactor  postgres.Transactor
	cfg         *config.Config
	now         func() time.Time
}

func NewService(
	tenantRepo repository.TenantRepository,
	orderRepo repository.OrderRepository,
	summaryRepo repository.SalesSummaryRepository,
	transactor postgres.Transactor,
	cfg *config.Config,
) *Service {
	return &Service{
		tenantRepo:  tenantRepo,
		orderRepo:   orderRepo,
		summaryRepo: summaryRepo,
		transactor:  transactor,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Settle confirma o pagamento de um pedido e soma a venda aos resumos do mês.
//
// A assinatura é validada antes de qualquer escrita. Os resumos, a baixa de estoque
// e a finalização do pedido rodam na mesma transação, com a linha do pedido e o
// período do resumo bloqueados; um pedido já pago retorna AlreadySettled sem nenhuma escrita.
func (s *Service) Settle(ctx context.Context, req domain.SettlementRequest) (*domain.SettlementResult, error) {
	req.TenantSlug = strings.ToLower(strings.TrimSpace(req.TenantSlug))

	if req.TenantSlug == "" || req.OrderID == "" || req.GatewayOrderID == "" ||
		req.GatewayPaymentID == "" || req.Signature == "" {
		return nil, NewSettlementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "loja, pedido, ids do gateway e assinatura são obrigatórios")
	}

	logger := logrus.WithFields(logrus.Fields{
		"tenant":   req.TenantSlug,
		"order_id": req.OrderID,
	})

	err := payment.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature, s.cfg.Payment.KeySecret)
	if errors.Is(err, payment.ErrSecretNotConfigured) {
		logger.Error("settlement: segredo do gateway não configurado")
		return nil, NewOrderSettlementError(ErrGatewayNotConfigured, apiErrors.ErrPaymentNotConfigured, req.OrderID, "")
	}
	if err != nil {
		logger.Warn("settlement: assinatura inválida")
		return nil, NewOrderSettlementError(ErrInvalidSignature, apiErrors.ErrPaymentInvalidSignature, req.OrderID, "")
	}

	tenant, err := s.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		logger.WithError(err).Error("settlement: erro ao buscar loja")
		return nil, NewSettlementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewSettlementError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, req.TenantSlug)
	}

	result := &domain.SettlementResult{OrderID: req.OrderID}

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.settle(ctx, tx, tenant.ID, req, result)
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, NewOrderSettlementError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, req.OrderID, "")
		}
		if errors.Is(err, ErrInvalidAmounts) {
			logger.WithError(err).Warn("settlement: valores do gateway rejeitados")
			return nil, NewOrderSettlementError(ErrInvalidAmounts, apiErrors.ErrPaymentInvalidAmounts, req.OrderID, err.Error())
		}
		logger.WithError(err).Error("settlement: erro ao liquidar pedido")
		return nil, NewOrderSettlementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.OrderID, err.Error())
	}

	if result.AlreadySettled {
		logger.Info("settlement: pedido já liquidado, nada a fazer")
		return result, nil
	}

	logger.WithField("period", result.Period.String()).Info("settlement: pedido liquidado")
	return result, nil
}

func (s *Service) settle(ctx context.Context, tx *sql.Tx, tenantID string, req domain.SettlementRequest, result *domain.SettlementResult) error {
	orders := s.orderRepo.WithTx(tx)
	summaries := s.summaryRepo.WithTx(tx)

	found, paid, err := orders.LockForSettlement(ctx, tenantID, req.OrderID)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}
	if paid {
		result.AlreadySettled = true
		return nil
	}

	totals, err := orders.GetWithItemQuantity(ctx, tenantID, req.OrderID)
	if err != nil {
		return err
	}
	if totals == nil {
		return ErrOrderNotFound
	}

	items, err := orders.ListItems(ctx, req.OrderID)
	if err != nil {
		return err
	}

	amounts, err := finalAmounts(req, totals)
	if err != nil {
		return err
	}
	period := domain.PeriodOf(totals.CreatedAt.In(s.location()))

	if err := summaries.LockPeriod(ctx, tenantID, period); err != nil {
		return err
	}

	summary, err := summaries.ApplyOrder(ctx, tenantID, period, domain.PaidOrderFigures{
		GrossAmount:   amounts.GrossAmount,
		SaleAmount:    amounts.SaleAmount,
		ItemsQuantity: totals.ItemsQuantity,
	})
	if err != nil {
		return err
	}

	if err := summaries.ApplyCategorySales(ctx, tenantID, period, domain.GroupItemsByCategory(items)); err != nil {
		return err
	}

	if err := summaries.ApplyProductSales(ctx, tenantID, period, domain.GroupItemsByProduct(items)); err != nil {
		return err
	}

	if err := orders.ConsumeStock(ctx, tenantID, req.OrderID); err != nil {
		return err
	}

	err = orders.MarkPaid(ctx, domain.MarkPaidParams{
		OrderID:          req.OrderID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		PaidAt:           s.now().UTC(),
		Amounts:          amounts,
	})
	if err != nil {
		return err
	}

	result.Period = period
	result.Summary = summary
	return nil
}

// finalAmounts combina campo a campo os valores enviados pelo gateway com os
// calculados no checkout. O resultado precisa ter desconto até o valor bruto e venda positiva.
func finalAmounts(req domain.SettlementRequest, totals *domain.OrderTotals) (domain.FinalAmounts, error) {
	amounts := domain.FinalAmounts{
		GrossAmount:    pick(req.GrossAmount, totals.GrossAmount),
		DiscountAmount: pick(req.DiscountAmount, totals.DiscountAmount),
		SaleAmount:     pick(req.SaleAmount, totals.SaleAmount),
	}

	switch {
	case amounts.GrossAmount.IsNegative() || amounts.DiscountAmount.IsNegative():
		return domain.FinalAmounts{}, fmt.Errorf("%w: valores negativos", ErrInvalidAmounts)
	case !amounts.SaleAmount.IsPositive():
		return domain.FinalAmounts{}, fmt.Errorf("%w: venda deve ser positiva", ErrInvalidAmounts)
	case amounts.DiscountAmount.GreaterThan(amounts.GrossAmount):
		return domain.FinalAmounts{}, fmt.Errorf("%w: desconto maior que o bruto", ErrInvalidAmounts)
	}

	return amounts, nil
}

func pick(supplied *decimal.Decimal, stored decimal.Decimal) decimal.Decimal {
	if supplied == nil {
		return stored
	}
	return *supplied
}

func (s *Service) location() *time.Location {
	if s.cfg.App.Location != nil {
		return s.cfg.App.Location
	}
	return time.UTC
}
