package services

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
)

const exportSheet = "Invoice"

// InvoiceExportService renders an invoice as a spreadsheet: header block,
// bill-to block, line items, totals and bank details.
type InvoiceExportService struct {
	companyName string
}

func NewInvoiceExportService(companyName string) *InvoiceExportService {
	return &InvoiceExportService{companyName: companyName}
}

// Export writes the workbook for one invoice.
func (s *InvoiceExportService) Export(inv invoice.Invoice, w io.Writer) error {
	f, err := s.build(inv)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing invoice workbook")
	}
	return nil
}

func (s *InvoiceExportService) build(inv invoice.Invoice) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, errors.Wrap(err, "creating invoice sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "dropping default sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	set := func(cell string, value any) {
		_ = f.SetCellValue(exportSheet, cell, value)
	}

	// Header block.
	set("A1", s.companyName)
	set("A2", "Invoice "+inv.Number)
	set("A3", "Issued: "+inv.IssuedDate)
	set("A4", "Due: "+inv.DueDate)
	_ = f.SetCellStyle(exportSheet, "A1", "A2", bold)

	// Bill-to block.
	set("A6", "Bill To")
	set("A7", inv.CustomerName)
	set("A8", inv.CustomerAddress)
	_ = f.SetCellStyle(exportSheet, "A6", "A6", bold)

	// Line items.
	const itemsHeader = 10
	set(fmt.Sprintf("A%d", itemsHeader), "Description")
	set(fmt.Sprintf("B%d", itemsHeader), "Quantity")
	set(fmt.Sprintf("C%d", itemsHeader), "Rate")
	set(fmt.Sprintf("D%d", itemsHeader), "Amount")
	_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", itemsHeader), fmt.Sprintf("D%d", itemsHeader), bold)

	row := itemsHeader + 1
	for _, item := range inv.Items {
		set(fmt.Sprintf("A%d", row), item.Description)
		set(fmt.Sprintf("B%d", row), item.Quantity.InexactFloat64())
		set(fmt.Sprintf("C%d", row), inv.FormatMoney(item.Rate))
		set(fmt.Sprintf("D%d", row), inv.FormatMoney(item.Amount()))
		row++
	}

	// Totals block.
	row++
	totals := []struct {
		label string
		value string
	}{
		{"Subtotal", inv.FormatMoney(inv.Subtotal())},
		{"Discount %", inv.DiscountPercent.String()},
		{"Tax %", inv.TaxPercent.String()},
		{"Shipping %", inv.ShippingPercent.String()},
		{"Total", inv.FormatMoney(inv.Total())},
		{"Amount Paid", inv.FormatMoney(inv.AmountPaid)},
		{"Balance Due", inv.FormatMoney(inv.BalanceDue())},
	}
	for _, line := range totals {
		set(fmt.Sprintf("C%d", row), line.label)
		set(fmt.Sprintf("D%d", row), line.value)
		row++
	}
	_ = f.SetCellStyle(exportSheet, fmt.Sprintf("C%d", row-3), fmt.Sprintf("D%d", row-1), bold)

	// Bank and payee block.
	row++
	set(fmt.Sprintf("A%d", row), "Payment Details")
	_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
	set(fmt.Sprintf("A%d", row+1), "Payee: "+inv.Bank.Payee)
	set(fmt.Sprintf("A%d", row+2), "Bank: "+inv.Bank.BankName)
	set(fmt.Sprintf("A%d", row+3), "Account: "+inv.Bank.AccountNumber)

	for col, width := range map[string]float64{"A": 32, "B": 10, "C": 14, "D": 16} {
		_ = f.SetColWidth(exportSheet, col, col, width)
	}
	return f, nil
}
