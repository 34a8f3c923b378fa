package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"amortizer/domain"
)

type solveFlags struct {
	principal float64
	payment   float64
	rate      float64
	months    int
	table     bool
}

func (f *solveFlags) bind(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		switch name {
		case "principal":
			cmd.Flags().Float64VarP(&f.principal, "principal", "p", 0, "amount borrowed")
		case "payment":
			cmd.Flags().Float64VarP(&f.payment, "payment", "m", 0, "monthly payment")
		case "rate":
			cmd.Flags().Float64VarP(&f.rate, "rate", "r", 0, "annual interest rate in percent")
		case "months":
			cmd.Flags().IntVarP(&f.months, "months", "n", 0, "number of monthly payments")
		}
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.Flags().BoolVarP(&f.table, "table", "t", false, "write the amortization table")
}

// finish prints the solved value and writes the table when asked.
func (f *solveFlags) finish(cmd *cobra.Command, a *app, calc domain.Calculation, line string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "Total paid: $%.2f (interest $%.2f)\n", calc.TotalPayment, calc.TotalInterest)
	if !f.table {
		return nil
	}
	return a.writeTable(out)(cmd.Context(), calc.Terms())
}

func newPaymentCmd(get func() *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Calculate the monthly payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			calc, err := a.svc.CalculatePayment(cmd.Context(), domain.PaymentInput{
				Principal: f.principal, AnnualRate: f.rate, Months: f.months,
			})
			if err != nil {
				return err
			}
			return f.finish(cmd, a, calc, fmt.Sprintf("Payment: $%.2f per month", calc.Payment))
		},
	}
	f.bind(cmd, "principal", "rate", "months")
	return cmd
}

func newPrincipalCmd(get func() *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "principal",
		Short: "Calculate the loan size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			calc, err := a.svc.CalculatePrincipal(cmd.Context(), domain.PrincipalInput{
				Payment: f.payment, AnnualRate: f.rate, Months: f.months,
			})
			if err != nil {
				return err
			}
			return f.finish(cmd, a, calc, fmt.Sprintf("Loan Amount: $%.2f", calc.Principal))
		},
	}
	f.bind(cmd, "payment", "rate", "months")
	return cmd
}

func newMonthsCmd(get func() *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "months",
		Short: "Calculate the number of payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			calc, err := a.svc.CalculateMonths(cmd.Context(), domain.MonthsInput{
				Principal: f.principal, Payment: f.payment, AnnualRate: f.rate,
			})
			if err != nil {
				return err
			}
			return f.finish(cmd, a, calc, fmt.Sprintf("Number of months to pay the loan: %d", calc.Months))
		},
	}
	f.bind(cmd, "principal", "payment", "rate")
	return cmd
}

func newRateCmd(get func() *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Calculate the annual interest rate (APR)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			calc, err := a.svc.CalculateRate(cmd.Context(), domain.RateInput{
				Principal: f.principal, Payment: f.payment, Months: f.months,
			})
			if err != nil {
				return err
			}
			return f.finish(cmd, a, calc, fmt.Sprintf("Annual Percentage Rate: %.3f%%", calc.AnnualRate))
		},
	}
	f.bind(cmd, "principal", "payment", "months")
	return cmd
}
