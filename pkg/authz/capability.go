package authz

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// View identifies one navigable surface of the application. The router and
// the navigation menu both consume the same capability table, so the two
// can never drift apart.
type View string

const (
	ViewDashboard     View = "dashboard"
	ViewAttendance    View = "attendance"
	ViewLeave         View = "leave"
	ViewEmployees     View = "employees"
	ViewEvents        View = "events"
	ViewHolidays      View = "holidays"
	ViewAnnouncements View = "announcements"
	ViewHandbook      View = "handbook"
	ViewHelpDesk      View = "helpdesk"
	ViewInvoices      View = "invoices"
	ViewAdvanceSalary View = "advance-salary"
	ViewSalarySlips   View = "salary-slips"
	ViewPayroll       View = "payroll"
	ViewArchive       View = "archive"
	ViewSettings      View = "settings"
)

// CapabilityTable maps a role to the set of views it may reach.
type CapabilityTable map[Role][]View

// DefaultCapabilities is the built-in role capability table. Archive is
// admin-only; salary slips are visible to everyone, payroll administration
// to HR and Admin.
func DefaultCapabilities() CapabilityTable {
	everyone := []View{
		ViewDashboard, ViewAttendance, ViewLeave,
		ViewEvents, ViewHolidays, ViewAnnouncements, ViewHandbook,
		ViewHelpDesk, ViewAdvanceSalary, ViewSalarySlips,
	}
	lead := append([]View{}, everyone...)
	lead = append(lead, ViewEmployees)

	hr := append([]View{}, everyone...)
	hr = append(hr, ViewEmployees, ViewPayroll, ViewSettings)

	manager := append([]View{}, everyone...)
	manager = append(manager, ViewEmployees, ViewPayroll, ViewInvoices)

	admin := append([]View{}, everyone...)
	admin = append(admin, ViewEmployees, ViewPayroll, ViewInvoices, ViewArchive, ViewSettings)

	return CapabilityTable{
		RoleAdmin:    admin,
		RoleUser:     everyone,
		RoleTeamLead: lead,
		RoleHR:       hr,
		RoleManager:  manager,
	}
}

// DefaultRouteViews maps URL path prefixes to the view gating them. The
// router consults this through the authorize middleware; the sidebar uses
// the same table through NavigationItem views.
func DefaultRouteViews() map[string]View {
	return map[string]View{
		"/dashboard":      ViewDashboard,
		"/attendance":     ViewAttendance,
		"/leave":          ViewLeave,
		"/employees":      ViewEmployees,
		"/events":         ViewEvents,
		"/holidays":       ViewHolidays,
		"/announcements":  ViewAnnouncements,
		"/handbook":       ViewHandbook,
		"/helpdesk":       ViewHelpDesk,
		"/invoices":       ViewInvoices,
		"/advance-salary": ViewAdvanceSalary,
		"/salary-slips":   ViewSalarySlips,
		"/payroll":        ViewPayroll,
		"/archive":        ViewArchive,
		"/settings":       ViewSettings,
	}
}

type capabilityFile struct {
	Version int                 `yaml:"version"`
	Roles   map[string][]string `yaml:"roles"`
}

// LoadCapabilities reads a YAML override of the capability table:
//
//	version: 1
//	roles:
//	  hr: [dashboard, salary-slips, payroll]
func LoadCapabilities(path string) (CapabilityTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file capabilityFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported capability file version: %d", file.Version)
	}

	table := make(CapabilityTable, len(file.Roles))
	for name, views := range file.Roles {
		role, ok := ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("unknown role in capability file: %q", name)
		}
		for _, v := range views {
			table[role] = append(table[role], View(v))
		}
	}
	return table, nil
}

// Views returns the sorted set of views a role may reach.
func (t CapabilityTable) Views(role Role) []View {
	views := append([]View{}, t[role]...)
	sort.Slice(views, func(i, j int) bool { return views[i] < views[j] })
	return views
}
