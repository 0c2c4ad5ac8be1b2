package workplace

import "github.com/peopledesk/peopledesk/pkg/types"

var EventsLink = types.NavigationItem{
	Name: "Events",
	Href: "/events",
	View: "events",
}

var HolidaysLink = types.NavigationItem{
	Name: "Holidays",
	Href: "/holidays",
	View: "holidays",
}

var AnnouncementsLink = types.NavigationItem{
	Name: "Announcements",
	Href: "/announcements",
	View: "announcements",
}

var HandbookLink = types.NavigationItem{
	Name: "Handbook",
	Href: "/handbook",
	View: "handbook",
}

var NavItems = []types.NavigationItem{
	EventsLink,
	HolidaysLink,
	AnnouncementsLink,
	HandbookLink,
}
