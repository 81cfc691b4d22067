package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesSummary agrega as vendas pagas de uma loja em um mês.
// (tenant, month, year) é único; contagens e somas são acumuladas e a média é recalculada.
type MonthlySalesSummary struct {
	ID                int64           `json:"id"`
	TenantID          string          `json:"tenant_id"`
	Month             string          `json:"month"`
	Year              string          `json:"year"`
	TotalOrders       int             `json:"total_orders"`
	GrossSales        decimal.Decimal `json:"gross_sales"`
	NetSales          decimal.Decimal `json:"net_sales"`
	TotalItemsSold    int             `json:"total_items_sold"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewMonthlySalesSummary(tenantID string, period SalesPeriod) *MonthlySalesSummary {
	return &MonthlySalesSummary{
		TenantID:          tenantID,
		Month:             period.Month,
		Year:              period.Year,
		GrossSales:        decimal.Zero,
		NetSales:          decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
}

// Accumulate soma um pedido pago ao resumo. A média é a média real das vendas
// líquidas, recalculada a partir dos totais e nunca somada.
func (s *MonthlySalesSummary) Accumulate(gross, net decimal.Decimal, items int) {
	s.TotalOrders++
	s.GrossSales = s.GrossSales.Add(gross)
	s.NetSales = s.NetSales.Add(net)
	s.TotalItemsSold += items
	s.AverageOrderValue = s.NetSales.Div(decimal.NewFromInt(int64(s.TotalOrders))).Round(2)
}

func (s *MonthlySalesSummary) Period() SalesPeriod {
	return SalesPeriod{Month: s.Month, Year: s.Year}
}

// CategorySales é a soma de uma categoria dentro de um pedido
type CategorySales struct {
	CategoryID string
	ItemsSold  int
	GrossSales decimal.Decimal
}

// CategorySalesSummary agrega vendas por categoria em um mês
type CategorySalesSummary struct {
	TenantID     string          `json:"tenant_id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Month        string          `json:"month"`
	Year         string          `json:"year"`
	TotalOrders  int             `json:"total_orders"`
	ItemsSold    int             `json:"items_sold"`
	GrossSales   decimal.Decimal `json:"gross_sales"`
}

// ProductSales é a soma de um produto dentro de um pedido
type ProductSales struct {
	ProductID    string
	QuantitySold int
	GrossSales   decimal.Decimal
}

// ProductMonthlySales agrega vendas por produto em um mês
type ProductMonthlySales struct {
	TenantID     string          `json:"tenant_id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Month        string          `json:"month"`
	Year         string          `json:"year"`
	QuantitySold int             `json:"quantity_sold"`
	GrossSales   decimal.Decimal `json:"gross_sales"`
}

// GroupItemsByCategory soma os itens por categoria, ignorando itens sem categoria
func GroupItemsByCategory(items []*OrderItem) []CategorySales {
	index := make(map[string]int)
	result := make([]CategorySales, 0)
	for _, item := range items {
		if item.CategoryID == nil || *item.CategoryID == "" {
			continue
		}
		pos, ok := index[*item.CategoryID]
		if !ok {
			pos = len(result)
			index[*item.CategoryID] = pos
			result = append(result, CategorySales{CategoryID: *item.CategoryID, GrossSales: decimal.Zero})
		}
		result[pos].ItemsSold += item.Quantity
		result[pos].GrossSales = result[pos].GrossSales.Add(item.GrossAmount)
	}
	return result
}

// GroupItemsByProduct soma os itens por produto, ignorando itens de produtos removidos
func GroupItemsByProduct(items []*OrderItem) []ProductSales {
	index := make(map[string]int)
	result := make([]ProductSales, 0)
	for _, item := range items {
		if item.ProductID == nil || *item.ProductID == "" {
			continue
		}
		pos, ok := index[*item.ProductID]
		if !ok {
			pos = len(result)
			index[*item.ProductID] = pos
			result = append(result, ProductSales{ProductID: *item.ProductID, GrossSales: decimal.Zero})
		}
		result[pos].QuantitySold += item.Quantity
		result[pos].GrossSales = result[pos].GrossSales.Add(item.GrossAmount)
	}
	return result
}
