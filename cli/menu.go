package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"amortizer/domain"
	"amortizer/finance"
	"amortizer/service"
)

// errQuit ends the menu loop; input running out is treated the same way.
var errQuit = errors.New("quit")

// TableWriter persists a schedule for the given terms.
type TableWriter func(ctx context.Context, terms domain.LoanTerms) error

// Menu is the interactive console front end: it reads three known
// quantities, solves for the fourth and offers to write the schedule.
type Menu struct {
	svc        *service.LoanService
	in         *bufio.Reader
	out        io.Writer
	writeTable TableWriter
}

func NewMenu(svc *service.LoanService, in io.Reader, out io.Writer, writeTable TableWriter) *Menu {
	return &Menu{
		svc:        svc,
		in:         bufio.NewReader(in),
		out:        out,
		writeTable: writeTable,
	}
}

// Run shows the menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.readLine()
		if err != nil {
			return quitOK(err)
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1", "p":
			err = m.solvePayment(ctx)
		case "2", "l":
			err = m.solvePrincipal(ctx)
		case "3", "n":
			err = m.solveMonths(ctx)
		case "4", "i":
			err = m.solveRate(ctx)
		case "5", "q":
			return nil
		default:
			continue
		}
		if err != nil {
			return quitOK(err)
		}
	}
}

func quitOK(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\nAmortization!\n")
	fmt.Fprint(m.out, "Please select a Menu Option\n\n")
	fmt.Fprint(m.out, "\t1. Calculate (P)ayment Size\n")
	fmt.Fprint(m.out, "\t2. Calculate (L)oan Size\n")
	fmt.Fprint(m.out, "\t3. Calculate (N)umber of Payments\n")
	fmt.Fprint(m.out, "\t4. Calculate (I)nterest (APR)\n")
	fmt.Fprint(m.out, "\t5. (Q)uit\n\n")
	fmt.Fprint(m.out, "Enter a menu option: ")
}

func (m *Menu) solvePayment(ctx context.Context) error {
	apr, err := m.readAPR()
	if err != nil {
		return err
	}
	principal, err := m.readPrincipal()
	if err != nil {
		return err
	}
	months, err := m.readMonths()
	if err != nil {
		return err
	}

	calc, err := m.svc.CalculatePayment(ctx, domain.PaymentInput{
		Principal: principal, AnnualRate: apr, Months: months,
	})
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "\nPayment: $%.2f per month", calc.Payment)
	return m.offerTable(ctx, calc)
}

func (m *Menu) solvePrincipal(ctx context.Context) error {
	apr, err := m.readAPR()
	if err != nil {
		return err
	}
	payment, err := m.readPayment()
	if err != nil {
		return err
	}
	months, err := m.readMonths()
	if err != nil {
		return err
	}

	calc, err := m.svc.CalculatePrincipal(ctx, domain.PrincipalInput{
		Payment: payment, AnnualRate: apr, Months: months,
	})
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "\nLoan Amount: $%.2f", calc.Principal)
	return m.offerTable(ctx, calc)
}

func (m *Menu) solveMonths(ctx context.Context) error {
	apr, err := m.readAPR()
	if err != nil {
		return err
	}
	principal, err := m.readPrincipal()
	if err != nil {
		return err
	}

	low, high := service.PaymentBounds(principal, apr)
	boundsMsg := fmt.Sprintf("\nThe payment you entered must be greater than %.2f and no bigger than %.2f", low, high)
	fmt.Fprint(m.out, boundsMsg)

	var payment float64
	for {
		payment, err = m.readPayment()
		if err != nil {
			return err
		}
		if payment > low && payment <= high {
			break
		}
		fmt.Fprint(m.out, boundsMsg)
	}

	calc, err := m.svc.CalculateMonths(ctx, domain.MonthsInput{
		Principal: principal, Payment: payment, AnnualRate: apr,
	})
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "\nNumber of months to pay the loan: %d", calc.Months)
	return m.offerTable(ctx, calc)
}

func (m *Menu) solveRate(ctx context.Context) error {
	principal, err := m.readPrincipal()
	if err != nil {
		return err
	}
	payment, err := m.readPayment()
	if err != nil {
		return err
	}

	minMonths := service.MinimumMonths(principal, payment)
	fmt.Fprintf(m.out, "\nNumber of months must be at least %d", minMonths)

	var months int
	for {
		months, err = m.readMonths()
		if err != nil {
			return err
		}
		if months >= minMonths {
			break
		}
		fmt.Fprintf(m.out, "\nThe month you entered must be at least %d", minMonths)
	}

	calc, err := m.svc.CalculateRate(ctx, domain.RateInput{
		Principal: principal, Payment: payment, Months: months,
	})
	if err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "\nAnnual Percentage Rate: %.3f%%", calc.AnnualRate)
	return m.offerTable(ctx, calc)
}

// report shows a calculation error and keeps the menu running.
func (m *Menu) report(err error) error {
	fmt.Fprintf(m.out, "\nCannot calculate: %v\n", err)
	return nil
}

func (m *Menu) offerTable(ctx context.Context, calc domain.Calculation) error {
	fmt.Fprint(m.out, "\nDo you wish to print an Amortization Table(Y/N)? ")
	answer, err := m.readLine()
	if err != nil {
		return err
	}
	if a := strings.TrimSpace(answer); strings.EqualFold(a, "n") || strings.EqualFold(a, "no") {
		return nil
	}
	if err := m.writeTable(ctx, calc.Terms()); err != nil {
		fmt.Fprintf(m.out, "\n%v\n", err)
	}
	return nil
}

func (m *Menu) readAPR() (float64, error) {
	fmt.Fprint(m.out, "\nEnter the interest rate (APR) you will be paying (nearest 1/8 points, >=0): ")
	for {
		apr, err := m.readFloat("Please enter a non-negative number")
		if err != nil {
			return 0, err
		}
		if apr < 0 {
			fmt.Fprint(m.out, "please enter a positive value for Annual Payment Rate: ")
			continue
		}
		apr = finance.RoundToNearestEighth(apr)
		fmt.Fprintf(m.out, "Interest: %.3f%%", apr)
		return apr, nil
	}
}

func (m *Menu) readPrincipal() (float64, error) {
	fmt.Fprint(m.out, "\nEnter the amount of money to be borrowed (amount > 0): $")
	for {
		loan, err := m.readFloat("\nPlease enter a non-negative number")
		if err != nil {
			return 0, err
		}
		if loan <= 0 {
			fmt.Fprint(m.out, "\nThe amount of Loan needs to be bigger than 0")
			continue
		}
		fmt.Fprintf(m.out, "Principal: $%.2f", loan)
		return finance.RoundToNearestCent(loan), nil
	}
}

func (m *Menu) readPayment() (float64, error) {
	fmt.Fprint(m.out, "\nEnter the amount of the monthly payment (amount > 0): $")
	for {
		payment, err := m.readFloat("\nPlease enter a non-negative number")
		if err != nil {
			return 0, err
		}
		if payment <= 0 {
			fmt.Fprint(m.out, "\nPlease enter number bigger than 0 for your monthly payment")
			continue
		}
		fmt.Fprintf(m.out, "Payment: $%.2f per month", payment)
		return finance.RoundToNearestCent(payment), nil
	}
}

func (m *Menu) readMonths() (int, error) {
	fmt.Fprintf(m.out, "\nEnter the number of months you will be making payments (0 < months <= %d): ",
		service.MaxTermMonths)
	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		months, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(m.out, "\nPlease enter a non-negative number from 0 to %d: ", service.MaxTermMonths)
			continue
		}
		if months < service.MinTermMonths || months > service.MaxTermMonths {
			fmt.Fprint(m.out, "\nYou have to input positive number for number of months")
			continue
		}
		fmt.Fprintf(m.out, "Number of Months to pay: %d", months)
		return months, nil
	}
}

func (m *Menu) readFloat(retry string) (float64, error) {
	for {
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(m.out, retry)
			continue
		}
		return v, nil
	}
}

// readLine returns the next input line. A final line without a newline is
// still returned; io.EOF only comes back once nothing is left.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
