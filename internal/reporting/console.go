package reporting

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
	"github.com/vfg2006/tawany-sales-analytics/pkg/utils"
)

// ConsoleReporter escreve o resumo de vendas em texto, seção por seção
type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

func (r *ConsoleReporter) Render(ctx context.Context, summary *domain.SalesSummary) error {
	if summary == nil {
		return errors.New("resumo de vendas ausente")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Relatório %s (%d registros)\n", summary.ID, summary.RecordCount)

	fmt.Fprintln(tw, "\nDados de vendas coletados:")
	fmt.Fprintln(tw, "Produto\tQuantidade\tData\tValor Unitário\tValor Total")
	for _, record := range summary.Preview {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			record.Product,
			record.Quantity,
			utils.FormatDate(record.Date),
			record.UnitPrice.StringFixed(2),
			record.TotalValue().StringFixed(2),
		)
	}

	fmt.Fprintln(tw, "\nVendas totais por produto:")
	for _, item := range sortedByProduct(summary.RevenueByProduct) {
		fmt.Fprintf(tw, "%s\t%s\n", item.Product, utils.FormatCurrency(item.Value))
	}

	fmt.Fprintln(tw, "\nReceita diária:")
	for _, item := range sortedByDate(summary.RevenueByDate) {
		fmt.Fprintf(tw, "%s\t%s\n", utils.FormatDate(item.Date), utils.FormatCurrency(item.Value))
	}

	fmt.Fprintln(tw, "\nProdutos mais vendidos (em quantidade):")
	for _, item := range summary.QuantityByProduct {
		fmt.Fprintf(tw, "%s\t%d\n", item.Product, item.Quantity)
	}

	fmt.Fprintln(tw, "\nVendas totais por mês:")
	for _, item := range sortedByMonth(summary.RevenueByMonth) {
		fmt.Fprintf(tw, "%s\t%s\n", utils.MonthName(item.Month), utils.FormatCurrency(item.Value))
	}

	fmt.Fprintln(tw, "\nPreço médio por produto:")
	for _, item := range sortedByProduct(summary.AvgPriceByProduct) {
		fmt.Fprintf(tw, "%s\t%s\n", item.Product, utils.FormatCurrency(item.Value))
	}

	if summary.Headline != nil {
		fmt.Fprintln(tw, "\n==== Relatório de Vendas ====")
		fmt.Fprintf(tw, "Receita total: %s\n", utils.FormatCurrency(summary.Headline.TotalRevenue))
		fmt.Fprintf(tw, "Produto mais vendido (quantidade): %s\n", summary.Headline.TopQuantityProduct)
		fmt.Fprintf(tw, "Produto com maior receita: %s\n", summary.Headline.TopRevenueProduct)
	}

	return errors.Wrap(tw.Flush(), "erro ao escrever relatório em texto")
}
