package core

import "github.com/peopledesk/peopledesk/pkg/types"

var DashboardLink = types.NavigationItem{
	Name: "Dashboard",
	Href: "/dashboard",
	View: "dashboard",
}

var EmployeesLink = types.NavigationItem{
	Name: "Employees",
	Href: "/employees",
	View: "employees",
}

var SettingsLink = types.NavigationItem{
	Name: "Settings",
	Href: "/settings",
	View: "settings",
}

var ArchiveLink = types.NavigationItem{
	Name: "Archive",
	Href: "/archive",
	View: "archive",
}

var NavItems = []types.NavigationItem{
	DashboardLink,
	EmployeesLink,
	SettingsLink,
	ArchiveLink,
}
