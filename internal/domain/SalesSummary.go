package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQuantity representa a quantidade total vendida de um produto
type ProductQuantity struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// HeadlineReport contém os indicadores principais do relatório de vendas
type HeadlineReport struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TopQuantityProduct string          `json:"top_quantity_product"`
	TopRevenueProduct  string          `json:"top_revenue_product"`
}

// SalesSummary reúne todas as agregações de uma execução do pipeline
type SalesSummary struct {
	ID                string                        `json:"id"`
	RunID             string                        `json:"run_id,omitempty"`
	GeneratedAt       time.Time                     `json:"generated_at"`
	RecordCount       int                           `json:"record_count"`
	Preview           []SaleRecord                  `json:"preview"`
	RevenueByProduct  map[string]decimal.Decimal    `json:"revenue_by_product"`
	RevenueByDate     map[time.Time]decimal.Decimal `json:"revenue_by_date"`
	QuantityByProduct []ProductQuantity             `json:"quantity_by_product"`
	RevenueByMonth    map[int]decimal.Decimal       `json:"revenue_by_month"`
	AvgPriceByProduct map[string]decimal.Decimal    `json:"avg_price_by_product"`
	Headline          *HeadlineReport               `json:"headline"`
}
