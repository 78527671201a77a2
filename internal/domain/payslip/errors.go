package payslip

import "errors"

var (
	ErrMissingCompany   = errors.New("payslip company is required")
	ErrMissingEmployee  = errors.New("payslip employee is required")
	ErrNegativeNetPay   = errors.New("payslip net pay must not be negative")
	ErrNetPayOutOfRange = errors.New("payslip net pay is too large")
	ErrTotalsMismatch   = errors.New("payslip totals do not match line items")
	ErrInvalidLayout    = errors.New("payslip layout is invalid")
	ErrRender           = errors.New("payslip render failed")
)
