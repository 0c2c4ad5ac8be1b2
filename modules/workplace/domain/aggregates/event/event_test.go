package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/modules/workplace/domain/aggregates/event"
)

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ev   event.Event
		want event.DisplayStatus
	}{
		{"cancelled wins over past end", event.Event{Status: event.StatusCancelled, EndTime: now.Add(-time.Hour)}, event.DisplayCancelled},
		{"completed wins over past end", event.Event{Status: event.StatusCompleted, EndTime: now.Add(-time.Hour)}, event.DisplayCompleted},
		{"past end without completion expires", event.Event{Status: event.StatusPending, EndTime: now.Add(-time.Minute)}, event.DisplayExpired},
		{"future event is pending", event.Event{Status: event.StatusPending, EndTime: now.Add(time.Hour)}, event.DisplayPending},
		{"zero end time never expires", event.Event{Status: event.StatusPending}, event.DisplayPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.ev.Display(now))
		})
	}
}

func TestCreateDTO_Validation(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)

	valid := &event.CreateDTO{
		Title:       "Town hall",
		Description: "Quarterly all-hands meeting",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	errs, ok := valid.Ok(context.Background())
	require.True(t, ok)
	require.Empty(t, errs)

	endBeforeStart := &event.CreateDTO{
		Title:       "Town hall",
		Description: "Quarterly all-hands meeting",
		StartTime:   start,
		EndTime:     start.Add(-time.Hour),
	}
	errs, ok = endBeforeStart.Ok(context.Background())
	require.False(t, ok)
	require.Contains(t, errs, "EndTime")

	pastStart := &event.CreateDTO{
		Title:       "Town hall",
		Description: "Quarterly all-hands meeting",
		StartTime:   time.Now().AddDate(0, 0, -2),
		EndTime:     start,
	}
	errs, ok = pastStart.Ok(context.Background())
	require.False(t, ok)
	require.Contains(t, errs, "StartTime")

	shortDescription := &event.CreateDTO{
		Title:       "Town hall",
		Description: "short",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	errs, ok = shortDescription.Ok(context.Background())
	require.False(t, ok)
	require.Contains(t, errs, "Description")
}
