// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/shopspring/decimal"
)

type StoreRankingResponse struct {
	Period  SalesPeriod         `json:"period"`
	Ranking []*StoreRankingItem `json:"ranking"`
}

type StoreRankingItem struct {
	Position          int             `json:"position"`
	TenantID          string          `json:"tenant_id"`
	Slug              string          `json:"slug"`
	StoreName         string          `json:"store_name"`
	NetSales          decimal.Decimal `json:"net_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}
