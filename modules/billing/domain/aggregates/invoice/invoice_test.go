package invoice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestInvoiceMath(t *testing.T) {
	inv := invoice.Invoice{
		Items: []invoice.LineItem{
			{Description: "Consulting", Quantity: dec("4"), Rate: dec("25")},
			{Description: "Support", Quantity: dec("2"), Rate: dec("50")},
		},
		DiscountPercent: dec("10"),
		TaxPercent:      dec("5"),
		ShippingPercent: dec("0"),
		AmountPaid:      dec("50"),
	}

	require.True(t, inv.Subtotal().Equal(dec("200")), "subtotal = %s", inv.Subtotal())
	// 200 × 0.9 = 180, then × 1.05 = 189.
	require.True(t, inv.Total().Equal(dec("189")), "total = %s", inv.Total())
	require.True(t, inv.BalanceDue().Equal(dec("139")), "balance due = %s", inv.BalanceDue())
}

func TestInvoiceMath_ShippingAndFractions(t *testing.T) {
	inv := invoice.Invoice{
		Items: []invoice.LineItem{
			{Quantity: dec("3"), Rate: dec("19.99")},
		},
		DiscountPercent: dec("0"),
		TaxPercent:      dec("8.25"),
		ShippingPercent: dec("2"),
	}

	require.True(t, inv.Subtotal().Equal(dec("59.97")))
	// 59.97 × 1.1025 = 66.116925, no float drift.
	require.True(t, inv.Total().Equal(dec("66.116925")), "total = %s", inv.Total())
}

func TestInvoiceMath_EmptyInvoice(t *testing.T) {
	inv := invoice.Invoice{DiscountPercent: dec("10"), TaxPercent: dec("5")}
	require.True(t, inv.Subtotal().IsZero())
	require.True(t, inv.Total().IsZero())
	require.True(t, inv.BalanceDue().IsZero())
}

func TestFormatMoney(t *testing.T) {
	inv := invoice.Invoice{Currency: "USD"}
	require.Equal(t, "$1,234.50", inv.FormatMoney(dec("1234.50")))

	unknown := invoice.Invoice{Currency: "???"}
	require.Equal(t, "$10.00", unknown.FormatMoney(dec("10")))
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	require.True(t, invoice.Invoice{Status: invoice.StatusSent, DueDate: "2026-03-01"}.Overdue(now))
	require.False(t, invoice.Invoice{Status: invoice.StatusPaid, DueDate: "2026-03-01"}.Overdue(now))
	require.False(t, invoice.Invoice{Status: invoice.StatusSent, DueDate: "2026-03-20"}.Overdue(now))
	require.False(t, invoice.Invoice{Status: invoice.StatusSent}.Overdue(now))
}
