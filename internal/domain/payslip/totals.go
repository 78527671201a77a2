package payslip

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// maxNetPay is the largest amount that can be spelled in words.
var maxNetPay = decimal.NewFromInt(math.MaxInt64)

type Totals struct {
	Earnings   decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

func SumLines(lines []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	return sum
}

func ComputeTotals(earnings, deductions []LineItem) Totals {
	gross := SumLines(earnings)
	withheld := SumLines(deductions)
	return Totals{Earnings: gross, Deductions: withheld, Net: gross.Sub(withheld)}
}

// CheckTotals compares the caller-supplied totals with the line items.
func CheckTotals(rec Record) error {
	computed := ComputeTotals(rec.Earnings, rec.Deductions)
	switch {
	case !computed.Earnings.Equal(rec.TotalEarnings):
		return fmt.Errorf("%w: total earnings %s, lines sum to %s", ErrTotalsMismatch, rec.TotalEarnings, computed.Earnings)
	case !computed.Deductions.Equal(rec.TotalDeductions):
		return fmt.Errorf("%w: total deductions %s, lines sum to %s", ErrTotalsMismatch, rec.TotalDeductions, computed.Deductions)
	case !rec.TotalEarnings.Sub(rec.TotalDeductions).Equal(rec.NetPay):
		return fmt.Errorf("%w: net pay %s, expected %s", ErrTotalsMismatch, rec.NetPay, rec.TotalEarnings.Sub(rec.TotalDeductions))
	}
	return nil
}

// Validate checks the parts of rec the renderer cannot substitute.
func Validate(rec Record) error {
	if rec.Company == nil {
		return ErrMissingCompany
	}
	if rec.Employee == nil {
		return ErrMissingEmployee
	}
	if rec.NetPay.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeNetPay, rec.NetPay)
	}
	if rec.NetPay.Round(0).GreaterThan(maxNetPay) {
		return fmt.Errorf("%w: %s", ErrNetPayOutOfRange, rec.NetPay)
	}
	return nil
}
