package output

import (
	"bytes"
	"fmt"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// ConsoleFormatter renders report summaries as concise console text.
type ConsoleFormatter struct{}

// FormatDashboard renders the dashboard summary.
func (c ConsoleFormatter) FormatDashboard(s *domain.DashboardSummary) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DASHBOARD SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Period: %s to %s\n", s.Period.Start.Format("2006-01-02"), s.Period.End.Format("2006-01-02"))
	fmt.Fprintln(&buf)
	for _, stat := range []domain.Stat{s.TotalIncome, s.TotalExpenses, s.NetProfit, s.DeductibleExpenses, s.TaxLiability} {
		fmt.Fprintf(&buf, "%-20s %16s  %s\n", stat.Label+":", FormatCurrency(stat.Value), FormatTrend(stat.Trend))
	}

	if len(s.Categories) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Expenses by category:")
		for _, cat := range s.Categories {
			fmt.Fprintf(&buf, "  %-22s %16s  %s\n", cat.Category, FormatCurrency(cat.Amount), FormatPercentage(cat.Percent))
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Deductible: %s  Non-deductible: %s\n",
		FormatCurrency(s.Split.Deductible), FormatCurrency(s.Split.NonDeductible))

	writeLiability(&buf, s.Liability)
	return buf.Bytes()
}

// FormatReports renders the per-bucket tax breakdown summary.
func (c ConsoleFormatter) FormatReports(s *domain.ReportsSummary) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TAX BREAKDOWN REPORT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Period: %s to %s\n", s.Period.Start.Format("2006-01-02"), s.Period.End.Format("2006-01-02"))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-10s %16s %16s %14s %14s %14s\n", "Bucket", "Income", "Expenses", "CIT", "PIT", "Total Tax")
	for _, point := range s.Series {
		fmt.Fprintf(&buf, "%-10s %16s %16s %14s %14s %14s\n",
			point.Label,
			FormatCurrency(point.Income), FormatCurrency(point.Expenses),
			FormatCurrency(point.CIT), FormatCurrency(point.PIT), FormatCurrency(point.TotalTax))
	}

	writeLiability(&buf, s.Liability)
	return buf.Bytes()
}

func writeLiability(buf *bytes.Buffer, l domain.FullLiabilityResult) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Tax liability:")
	fmt.Fprintf(buf, "  Taxable profit:   %s (deductions %s)\n",
		FormatCurrency(l.Profit.TaxableProfit), FormatCurrency(l.Profit.TotalDeductions))
	for _, item := range l.Profit.Itemized {
		fmt.Fprintf(buf, "    %-20s %16s\n", item.Category, FormatCurrency(item.Amount))
	}
	fmt.Fprintf(buf, "  CIT:              %s (%s)\n", FormatCurrency(l.CIT.Total), l.CIT.Reason)
	if l.PIT != nil {
		fmt.Fprintf(buf, "  PIT:              %s on taxable income %s\n",
			FormatCurrency(l.PIT.TotalPIT), FormatCurrency(l.PIT.TaxableIncome))
		for _, line := range l.PIT.Brackets {
			fmt.Fprintf(buf, "    %s at %s\n", FormatCurrency(line.TaxableAmount), FormatPercentage(line.Rate.Mul(hundred)))
		}
	}
	fmt.Fprintf(buf, "  CGT:              %s\n", FormatCurrency(l.CGT))
	fmt.Fprintf(buf, "  Dividend tax:     %s\n", FormatCurrency(l.DividendTax))
	fmt.Fprintf(buf, "  Total:            %s\n", FormatCurrency(l.Total))
}
