package employee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/hrm/domain/aggregates/employee"
)

func TestCelebrations_Buckets(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	staff := []employee.Employee{
		{ID: "1", Name: "Asha", Active: true, DateOfBirth: "1990-03-15", JoiningDate: "2020-04-02"},
		{ID: "2", Name: "Bo", Active: true, DateOfBirth: "1985-03-20", JoiningDate: "2019-03-01"},
		{ID: "3", Name: "Cleo", Active: true, DateOfBirth: "1992-05-01"},
		{ID: "4", Name: "Dev", Active: false, DateOfBirth: "1990-03-15"},
	}

	buckets := employee.Celebrations(now, staff)

	require.Len(t, buckets.Today, 1)
	require.Equal(t, "Asha", buckets.Today[0].Name)
	require.Equal(t, employee.KindBirthday, buckets.Today[0].Kind)
	require.Equal(t, 36, buckets.Today[0].Years)

	// A today match appears in the month overview too; Bo's anniversary on
	// the 1st already passed, so only the upcoming birthday joins it.
	require.Len(t, buckets.ThisMonth, 2)
	require.Equal(t, "Asha", buckets.ThisMonth[0].Name)
	require.Equal(t, "Bo", buckets.ThisMonth[1].Name)

	require.Len(t, buckets.NextMonth, 1)
	require.Equal(t, employee.KindAnniversary, buckets.NextMonth[0].Kind)
	require.Equal(t, 6, buckets.NextMonth[0].Years)
}

func TestCelebrations_TodayAlsoCountsForThisMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	staff := []employee.Employee{
		{ID: "1", Name: "Asha", Active: true, DateOfBirth: "1990-03-15"},
	}

	buckets := employee.Celebrations(now, staff)

	require.Len(t, buckets.Today, 1)
	require.Len(t, buckets.ThisMonth, 1)
	require.Equal(t, "Asha", buckets.ThisMonth[0].Name)
	require.Empty(t, buckets.NextMonth)
}

func TestCelebrations_DecemberRollsIntoJanuary(t *testing.T) {
	now := time.Date(2026, time.December, 10, 10, 0, 0, 0, time.UTC)
	staff := []employee.Employee{
		{ID: "1", Name: "Asha", Active: true, DateOfBirth: "1990-01-05"},
		{ID: "2", Name: "Bo", Active: true, JoiningDate: "2020-12-24"},
	}

	buckets := employee.Celebrations(now, staff)

	require.Len(t, buckets.ThisMonth, 1)
	require.Equal(t, "Bo", buckets.ThisMonth[0].Name)

	require.Len(t, buckets.NextMonth, 1)
	require.Equal(t, "Asha", buckets.NextMonth[0].Name)
	// January occurrence belongs to 2027.
	require.Equal(t, 37, buckets.NextMonth[0].Years)
}

func TestCelebrations_SortedByDay(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	staff := []employee.Employee{
		{ID: "1", Name: "Zed", Active: true, DateOfBirth: "1990-06-20"},
		{ID: "2", Name: "Amy", Active: true, DateOfBirth: "1990-06-05"},
	}

	buckets := employee.Celebrations(now, staff)
	require.Len(t, buckets.ThisMonth, 2)
	require.Equal(t, "Amy", buckets.ThisMonth[0].Name)
	require.Equal(t, "Zed", buckets.ThisMonth[1].Name)
}
