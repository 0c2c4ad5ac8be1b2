package helpdesk

import "github.com/peopledesk/peopledesk/pkg/types"

var HelpDeskLink = types.NavigationItem{
	Name: "Help Desk",
	Href: "/helpdesk/tickets",
	View: "helpdesk",
}

var NavItems = []types.NavigationItem{
	HelpDeskLink,
}
