// Package invoice models customer invoices. All money math runs on
// decimals; floats only appear at the JSON boundary of percent fields.
package invoice

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/peopledesk/peopledesk/pkg/constants"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Amount is quantity times rate for one line.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

type BankDetails struct {
	Payee         string `json:"payee"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

type Invoice struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	Items           []LineItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	ShippingPercent decimal.Decimal `json:"shippingPercent"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	IssuedDate      string          `json:"issuedDate"`
	DueDate         string          `json:"dueDate"`
	Bank            BankDetails     `json:"bank"`
}

func (inv Invoice) EntityID() string { return inv.ID }

var hundred = decimal.NewFromInt(100)

// Subtotal sums the line amounts.
func (inv Invoice) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// Total applies the discount to the subtotal first, then adds tax and
// shipping on the discounted base:
//
//	total = (subtotal × (1 − discount%)) × (1 + tax% + shipping%)
func (inv Invoice) Total() decimal.Decimal {
	discounted := inv.Subtotal().Mul(decimal.NewFromInt(1).Sub(inv.DiscountPercent.Div(hundred)))
	uplift := decimal.NewFromInt(1).Add(inv.TaxPercent.Div(hundred)).Add(inv.ShippingPercent.Div(hundred))
	return discounted.Mul(uplift)
}

// BalanceDue is what remains after payments. It can go negative on
// overpayment; the caller decides how to render that.
func (inv Invoice) BalanceDue() decimal.Decimal {
	return inv.Total().Sub(inv.AmountPaid)
}

// FormatMoney renders a decimal amount in the invoice currency, e.g.
// "$1,234.50". Unknown currencies fall back to USD.
func (inv Invoice) FormatMoney(amount decimal.Decimal) string {
	code := inv.Currency
	if money.GetCurrency(code) == nil {
		code = money.USD
	}
	minor := amount.Mul(hundred).Round(0).IntPart()
	return money.New(minor, code).Display()
}

type LineItemDTO struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

type CreateDTO struct {
	Number          string        `json:"number" validate:"required"`
	CustomerName    string        `json:"customerName" validate:"required"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []LineItemDTO `json:"items" validate:"required,min=1,dive"`
	DiscountPercent float64       `json:"discountPercent" validate:"gte=0,lte=100"`
	TaxPercent      float64       `json:"taxPercent" validate:"gte=0"`
	ShippingPercent float64       `json:"shippingPercent" validate:"gte=0"`
	Currency        string        `json:"currency"`
	DueDate         string        `json:"dueDate" validate:"required,notpast"`
}

func (d *CreateDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}

type PaymentDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	PaidAt string  `json:"paidAt"`
}

func (d *PaymentDTO) Ok(_ context.Context) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return nil, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), nil), false
}

// Overdue reports whether an unpaid invoice has passed its due date.
func (inv Invoice) Overdue(now time.Time) bool {
	if inv.Status == StatusPaid {
		return false
	}
	due, err := time.Parse(constants.DateFormat, inv.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}
