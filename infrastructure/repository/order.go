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

//go:generate mockgen -source=order.go -destination=mocks/order_mock.go -package=mocks

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
)

var orderColumns = []string{
	"id",
	"tenant_id",
	"customer_id",
	"receipt_number",
	"gross_amount",
	"discount_amount",
	"tax_amount",
	"shipping_amount",
	"sale_amount",
	"paid",
	"paid_at",
	"gateway_order_id",
	"gateway_payment_id",
	"created_at",
	"updated_at",
}

type OrderRepository interface {
	WithTx(tx *sql.Tx) OrderRepository
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*domain.Order, error)
	LockForSettlement(ctx context.Context, tenantID, orderID string) (found bool, paid bool, err error)
	GetWithItemQuantity(ctx context.Context, tenantID, orderID string) (*domain.OrderTotals, error)
	ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error)
	MarkPaid(ctx context.Context, params domain.MarkPaidParams) error
	ConsumeStock(ctx context.Context, tenantID, orderID string) error
	ListPaidByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]domain.PaidOrderFigures, error)
}

type orderRepository struct {
	conn postgres.Queryer
}

func NewOrderRepository(conn postgres.Queryer) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) WithTx(tx *sql.Tx) OrderRepository {
	return &orderRepository{conn: tx}
}

// Create grava o pedido e seus itens. Deve rodar dentro de uma transação.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(ordersTable).
		Columns(
			"id",
			"tenant_id",
			"customer_id",
			"receipt_number",
			"gross_amount",
			"discount_amount",
			"tax_amount",
			"shipping_amount",
			"sale_amount",
			"paid",
		).
		Values(
			order.ID,
			order.TenantID,
			order.CustomerID,
			order.ReceiptNumber,
			order.GrossAmount,
			order.DiscountAmount,
			order.TaxAmount,
			order.ShippingAmount,
			order.SaleAmount,
			false,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir pedido: %w", err)
	}

	if len(order.Items) == 0 {
		return nil
	}

	itemsQuery := squirrel.
		Insert(orderItemsTable).
		Columns(
			"id",
			"order_id",
			"product_id",
			"category_id",
			"product_name",
			"quantity",
			"unit_price",
			"discount",
			"gross_amount",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range order.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.OrderID = order.ID
		itemsQuery = itemsQuery.Values(
			item.ID,
			item.OrderID,
			item.ProductID,
			item.CategoryID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.GrossAmount,
		)
	}

	query, args, err = itemsQuery.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de itens: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir itens do pedido: %w", err)
	}

	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"id": orderID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order, err := scanOrder(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	order.Items, err = r.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// LockForSettlement trava a linha do pedido até o fim da transação e informa se ele já foi pago
func (r *orderRepository) LockForSettlement(ctx context.Context, tenantID, orderID string) (bool, bool, error) {
	query, args, err := squirrel.
		Select("paid").
		From(ordersTable).
		Where(squirrel.Eq{"id": orderID, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var paid bool
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&paid)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("erro ao travar pedido: %w", err)
	}

	return true, paid, nil
}

// GetWithItemQuantity busca o pedido junto com a soma das quantidades dos itens.
// Um pedido sem itens retorna quantidade zero.
func (r *orderRepository) GetWithItemQuantity(ctx context.Context, tenantID, orderID string) (*domain.OrderTotals, error) {
	query, args, err := squirrel.
		Select(
			"o.id",
			"o.created_at",
			"o.gross_amount",
			"o.discount_amount",
			"o.sale_amount",
			"COALESCE(SUM(oi.quantity), 0)",
		).
		From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.id").
		Where(squirrel.Eq{"o.id": orderID, "o.tenant_id": tenantID}).
		GroupBy("o.id", "o.created_at", "o.gross_amount", "o.discount_amount", "o.sale_amount").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.OrderTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.ID,
		&totals.CreatedAt,
		&totals.GrossAmount,
		&totals.DiscountAmount,
		&totals.SaleAmount,
		&totals.ItemsQuantity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	return totals, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"order_id",
			"product_id",
			"category_id",
			"product_name",
			"quantity",
			"unit_price",
			"discount",
			"gross_amount",
		).
		From(orderItemsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("product_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens do pedido: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := &domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.CategoryID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.GrossAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// MarkPaid finaliza o pedido. A condição paid = false impede uma segunda finalização.
func (r *orderRepository) MarkPaid(ctx context.Context, params domain.MarkPaidParams) error {
	query, args, err := squirrel.
		Update(ordersTable).
		Set("paid", true).
		Set("paid_at", params.PaidAt).
		Set("gateway_order_id", params.GatewayOrderID).
		Set("gateway_payment_id", params.GatewayPaymentID).
		Set("gross_amount", params.Amounts.GrossAmount).
		Set("discount_amount", params.Amounts.DiscountAmount).
		Set("sale_amount", params.Amounts.SaleAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": params.OrderID, "paid": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar pedido: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("erro ao finalizar pedido %s: %d linhas alteradas", params.OrderID, affected)
	}

	return nil
}

// O pagamento já foi capturado, então o estoque para em zero em vez de falhar a liquidação.
const consumeStockQuery = `UPDATE products p SET
	stock = GREATEST(p.stock - oi.quantity, 0),
	updated_at = NOW()
FROM order_items oi
WHERE oi.order_id = $1 AND oi.product_id = p.id AND p.tenant_id = $2`

// ConsumeStock baixa do estoque as quantidades dos itens do pedido
func (r *orderRepository) ConsumeStock(ctx context.Context, tenantID, orderID string) error {
	if _, err := r.conn.ExecContext(ctx, consumeStockQuery, orderID, tenantID); err != nil {
		return fmt.Errorf("erro ao baixar estoque do pedido %s: %w", orderID, err)
	}
	return nil
}

// ListPaidByPeriod retorna os valores dos pedidos pagos criados em [start, end)
func (r *orderRepository) ListPaidByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]domain.PaidOrderFigures, error) {
	query, args, err := squirrel.
		Select(
			"o.gross_amount",
			"o.sale_amount",
			"COALESCE(SUM(oi.quantity), 0)",
		).
		From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.id").
		Where(squirrel.Eq{"o.tenant_id": tenantID, "o.paid": true}).
		Where(squirrel.GtOrEq{"o.created_at": start}).
		Where(squirrel.Lt{"o.created_at": end}).
		GroupBy("o.id", "o.created_at", "o.gross_amount", "o.sale_amount").
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos pagos: %w", err)
	}
	defer rows.Close()

	figures := make([]domain.PaidOrderFigures, 0)
	for rows.Next() {
		var f domain.PaidOrderFigures
		if err := rows.Scan(&f.GrossAmount, &f.SaleAmount, &f.ItemsQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido pago: %w", err)
		}
		figures = append(figures, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return figures, nil
}

func scanOrder(row scanner) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.TenantID,
		&order.CustomerID,
		&order.ReceiptNumber,
		&order.GrossAmount,
		&order.DiscountAmount,
		&order.TaxAmount,
		&order.ShippingAmount,
		&order.SaleAmount,
		&order.Paid,
		&order.PaidAt,
		&order.GatewayOrderID,
		&order.GatewayPaymentID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
