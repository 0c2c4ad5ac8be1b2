package employee

import (
	"sort"
	"time"

	"github.com/peopledesk/peopledesk/pkg/constants"
)

type CelebrationKind string

const (
	KindBirthday    CelebrationKind = "birthday"
	KindAnniversary CelebrationKind = "anniversary"
)

// Celebration is one upcoming birthday or work anniversary. Years counts
// completed years at the upcoming occurrence.
type Celebration struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Kind       CelebrationKind `json:"kind"`
	Month      time.Month      `json:"month"`
	Day        int             `json:"day"`
	Years      int             `json:"years"`
}

// Buckets groups celebrations for the dashboard widget.
type Buckets struct {
	Today     []Celebration `json:"today"`
	ThisMonth []Celebration `json:"thisMonth"`
	NextMonth []Celebration `json:"nextMonth"`
}

// Celebrations buckets every active employee's birthday and anniversary
// around now: today, later this month, and anywhere in the following
// calendar month. December rolls over into January of the next year, which
// matters for the Years count.
func Celebrations(now time.Time, employees []Employee) Buckets {
	var buckets Buckets
	year, month, day := now.Date()

	nextMonth := month + 1
	nextMonthYear := year
	if nextMonth > time.December {
		nextMonth = time.January
		nextMonthYear = year + 1
	}

	for _, emp := range employees {
		if !emp.Active {
			continue
		}
		for _, src := range []struct {
			date string
			kind CelebrationKind
		}{
			{emp.DateOfBirth, KindBirthday},
			{emp.JoiningDate, KindAnniversary},
		} {
			origin, err := time.Parse(constants.DateFormat, src.date)
			if err != nil {
				continue
			}
			cel := Celebration{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Kind:       src.kind,
				Month:      origin.Month(),
				Day:        origin.Day(),
			}
			switch {
			case origin.Month() == month && origin.Day() >= day:
				cel.Years = year - origin.Year()
				// A today match belongs in both buckets: the widget shows
				// it under "today" and in the month overview.
				if origin.Day() == day {
					buckets.Today = append(buckets.Today, cel)
				}
				buckets.ThisMonth = append(buckets.ThisMonth, cel)
			case origin.Month() == nextMonth:
				cel.Years = nextMonthYear - origin.Year()
				buckets.NextMonth = append(buckets.NextMonth, cel)
			}
		}
	}

	sortCelebrations(buckets.Today)
	sortCelebrations(buckets.ThisMonth)
	sortCelebrations(buckets.NextMonth)
	return buckets
}

func sortCelebrations(cels []Celebration) {
	sort.Slice(cels, func(i, j int) bool {
		if cels[i].Day != cels[j].Day {
			return cels[i].Day < cels[j].Day
		}
		return cels[i].Name < cels[j].Name
	})
}
