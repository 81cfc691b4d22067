package checkout

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Checkouter interface {
	PlaceOrder(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, slug, orderID string, claims *domain.Claims) (*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID int) ([]*domain.Order, error)
}

type Service struct {
	tenantRepo  repository.TenantRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	transactor  postgres.Transactor
	pricing     config.Checkout
	receipt     func() (string, error)
}

func NewService(
	tenantRepo repository.TenantRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	transactor postgres.Transactor,
	cfg *config.Config,
) *Service {
	return &Service{
		tenantRepo:  tenantRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		transactor:  transactor,
		pricing:     cfg.Checkout,
		receipt:     utils.GenerateReceiptNumber,
	}
}

type cartLine struct {
	product  *domain.Product
	quantity int
}

// PlaceOrder cria um pedido não pago com os valores calculados a partir do catálogo da loja
func (s *Service) PlaceOrder(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error) {
	quantities, err := mergeItems(req.Items)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(req.TenantSlug))
	if err != nil {
		logrus.WithError(err).Error("checkout: erro ao buscar loja")
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewCheckoutError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, req.TenantSlug)
	}
	if !tenant.CanSell() {
		return nil, NewCheckoutError(ErrTenantCannotSell, apiErrors.ErrTenantCannotSell, req.TenantSlug)
	}

	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	products, err := s.productRepo.GetByIDs(ctx, tenant.ID, ids)
	if err != nil {
		logrus.WithError(err).Error("checkout: erro ao buscar produtos")
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar produtos")
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]cartLine, 0, len(ids))
	for _, id := range ids {
		product, ok := byID[id]
		if !ok || !product.Active {
			return nil, NewProductCheckoutError(ErrProductNotFound, apiErrors.ErrProductNotFound, id)
		}
		if product.Stock < quantities[id] {
			return nil, NewProductCheckoutError(ErrOutOfStock, apiErrors.ErrOrderOutOfStock, id)
		}
		lines = append(lines, cartLine{product: product, quantity: quantities[id]})
	}

	order := priceOrder(lines, s.pricing)
	order.TenantID = tenant.ID
	order.CustomerID = req.CustomerID

	order.ReceiptNumber, err = s.receipt()
	if err != nil {
		return nil, NewCheckoutError(ErrGenerateReceipt, apiErrors.ErrInternalServer, err.Error())
	}

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.orderRepo.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		logrus.WithError(err).WithField("tenant", tenant.Slug).Error("checkout: erro ao gravar pedido")
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao gravar pedido")
	}

	logrus.WithFields(logrus.Fields{
		"tenant":   tenant.Slug,
		"order_id": order.ID,
		"receipt":  order.ReceiptNumber,
		"sale":     order.SaleAmount.StringFixed(2),
	}).Info("checkout: pedido criado")

	return order, nil
}

// GetOrder retorna o pedido para o cliente que comprou ou para quem administra a loja
func (s *Service) GetOrder(ctx context.Context, slug, orderID string, claims *domain.Claims) (*domain.Order, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar loja")
	}
	if tenant == nil {
		return nil, NewCheckoutError(ErrTenantNotFound, apiErrors.ErrTenantNotFound, slug)
	}

	order, err := s.orderRepo.GetByID(ctx, tenant.ID, orderID)
	if err != nil {
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao buscar pedido")
	}

	// Pedido de outro cliente responde como inexistente
	if order == nil || claims == nil || (order.CustomerID != claims.UserID && !tenant.ManagedBy(claims)) {
		return nil, NewCheckoutError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, orderID)
	}

	return order, nil
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID int) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, NewCheckoutError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao listar pedidos")
	}
	return orders, nil
}

// mergeItems soma as quantidades de itens repetidos do mesmo produto
func mergeItems(items []domain.CheckoutItem) (map[string]int, error) {
	if len(items) == 0 {
		return nil, NewCheckoutError(ErrEmptyCart, apiErrors.ErrOrderInvalidItems, "")
	}

	quantities := make(map[string]int, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, NewCheckoutError(ErrProductNotFound, apiErrors.ErrOrderInvalidItems, "item sem produto")
		}
		if item.Quantity <= 0 {
			return nil, NewProductCheckoutError(ErrInvalidQuantity, apiErrors.ErrOrderInvalidItems, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	return quantities, nil
}

// priceOrder calcula os valores do pedido:
//
//	bruto    = Σ preço de lista × quantidade
//	desconto = Σ (preço de lista − preço) × quantidade
//	imposto  = (bruto − desconto) × alíquota
//	frete    = taxa fixa, isento quando (bruto − desconto) ≥ limite de frete grátis
//	venda    = bruto − desconto + imposto + frete
func priceOrder(lines []cartLine, pricing config.Checkout) *domain.Order {
	gross := decimal.Zero
	discount := decimal.Zero
	items := make([]*domain.OrderItem, 0, len(lines))

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.quantity))
		listPrice := line.product.ListPrice()

		lineGross := listPrice.Mul(qty)
		lineDiscount := listPrice.Sub(line.product.Price).Mul(qty)

		gross = gross.Add(lineGross)
		discount = discount.Add(lineDiscount)

		productID := line.product.ID
		items = append(items, &domain.OrderItem{
			ProductID:   &productID,
			CategoryID:  line.product.CategoryID,
			ProductName: line.product.Name,
			Quantity:    line.quantity,
			UnitPrice:   listPrice,
			Discount:    lineDiscount,
			GrossAmount: lineGross,
		})
	}

	subtotal := gross.Sub(discount)
	tax := subtotal.Mul(pricing.TaxRate).Round(2)

	shipping := pricing.ShippingFee
	if pricing.FreeShippingThreshold.IsPositive() && subtotal.GreaterThanOrEqual(pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return &domain.Order{
		GrossAmount:    gross,
		DiscountAmount: discount,
		TaxAmount:      tax,
		ShippingAmount: shipping,
		SaleAmount:     subtotal.Add(tax).Add(shipping),
		Items:          items,
	}
}
