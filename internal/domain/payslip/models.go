package payslip

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Employee struct {
	Name        string           `json:"name"`
	ID          string           `json:"id"`
	Department  string           `json:"department"`
	Designation string           `json:"designation"`
	UAN         string           `json:"uan"`
	PAN         string           `json:"pan"`
	WorkDays    *int             `json:"workDays,omitempty"`
	JoiningDate string           `json:"joiningDate"`
	Location    string           `json:"location,omitempty"`
	Bank        string           `json:"bank,omitempty"`
	AccountNo   string           `json:"accountNo,omitempty"`
	LossOfPay   *decimal.Decimal `json:"lop,omitempty"`
}

type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Record is one employee's payslip for one period. Totals and net pay are
// computed by the caller.
type Record struct {
	Company         *Company        `json:"company"`
	Month           string          `json:"month"`
	Employee        *Employee       `json:"employee"`
	Earnings        []LineItem      `json:"earnings"`
	Deductions      []LineItem      `json:"deductions"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
	PrintDate       string          `json:"printDate"`
}

// Document is a rendered payslip ready to be served.
type Document struct {
	Filename string
	Content  []byte
}

// Filename returns the download name for rec, e.g. Payslip_E042_August_2025.pdf.
func Filename(rec Record) string {
	employeeID := ""
	if rec.Employee != nil {
		employeeID = rec.Employee.ID
	}
	return "Payslip_" + underscoreSpaces(employeeID) + "_" + underscoreSpaces(rec.Month) + ".pdf"
}

func underscoreSpaces(value string) string {
	return strings.ReplaceAll(value, " ", "_")
}
