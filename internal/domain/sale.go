package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa uma venda individual. É tratado como valor imutável:
// nenhuma etapa do pipeline altera um registro depois de criado.
type SaleRecord struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Date      time.Time       `json:"date"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewSaleRecord cria um registro com a data normalizada para meia-noite UTC
// e o preço unitário arredondado para duas casas decimais
func NewSaleRecord(product string, quantity int, date time.Time, unitPrice decimal.Decimal) SaleRecord {
	return SaleRecord{
		Product:   product,
		Quantity:  quantity,
		Date:      DateOf(date),
		UnitPrice: unitPrice.Round(2),
	}
}

// TotalValue é sempre recalculado a partir de Quantity * UnitPrice
func (s SaleRecord) TotalValue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Month retorna o mês da venda (1..12)
func (s SaleRecord) Month() int {
	return int(s.Date.Month())
}

// DateOf descarta hora e fuso, mantendo apenas o dia do calendário
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
