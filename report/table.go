// Package report renders amortization schedules as fixed-width text tables.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"amortizer/domain"
)

// RowSource yields schedule rows in order until it reports false.
type RowSource interface {
	Next() (domain.ScheduleRow, bool)
}

// WriteTable writes the header and every row produced by rows.
func WriteTable(w io.Writer, terms domain.LoanTerms, rows RowSource) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Amortization Table for $%s Loan at %s%% interest for %d months\n",
		money(terms.Principal), decimal.NewFromFloat(terms.AnnualRate()).StringFixed(3), terms.Months)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%s %22s %15s %15s\n", "Payments", "Principal Paid", "Interest Paid", "Loan Balance")

	for {
		row, ok := rows.Next()
		if !ok {
			break
		}
		fmt.Fprintf(bw, "%-5d ( %8s) $ %13s $ %13s $ %12s \n",
			row.Period,
			money(row.Payment),
			money(row.PrincipalPaid),
			money(row.InterestPaid),
			money(row.Balance),
		)
	}
	return bw.Flush()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
