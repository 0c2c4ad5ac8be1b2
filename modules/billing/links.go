package billing

import "github.com/peopledesk/peopledesk/pkg/types"

var InvoicesLink = types.NavigationItem{
	Name: "Invoices",
	Href: "/invoices",
	View: "invoices",
}

var NavItems = []types.NavigationItem{
	InvoicesLink,
}
