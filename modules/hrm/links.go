package hrm

import "github.com/peopledesk/peopledesk/pkg/types"

var AttendanceLink = types.NavigationItem{
	Name: "Attendance",
	Href: "/attendance",
	View: "attendance",
}

var LeaveLink = types.NavigationItem{
	Name: "Leave",
	Href: "/leave",
	View: "leave",
}

var AdvanceSalaryLink = types.NavigationItem{
	Name: "Advance Salary",
	Href: "/advance-salary",
	View: "advance-salary",
}

var SalarySlipsLink = types.NavigationItem{
	Name: "Salary Slips",
	Href: "/salary-slips",
	View: "salary-slips",
}

var PayrollLink = types.NavigationItem{
	Name: "Payroll",
	Href: "/payroll",
	View: "payroll",
	Children: []types.NavigationItem{
		AdvanceSalaryLink,
		SalarySlipsLink,
	},
}

var NavItems = []types.NavigationItem{
	AttendanceLink,
	LeaveLink,
	AdvanceSalaryLink,
	SalarySlipsLink,
	PayrollLink,
}
