package services

import (
	"testing"
	"time"
)

func TestAssignmentStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deadline  time.Time
		submitted bool
		want      string
	}{
		{
			name:      "submitted wins over any deadline",
			deadline:  now.Add(-48 * time.Hour),
			submitted: true,
			want:      "Submitted",
		},
		{
			name:     "deadline passed",
			deadline: now.Add(-24 * time.Hour),
			want:     "Overdue",
		},
		{
			// A partial day rounds up, so minutes past still count as day 0.
			name:     "one minute past still counts as today",
			deadline: now.Add(-time.Minute),
			want:     "Due Today",
		},
		{
			name:     "exactly now",
			deadline: now,
			want:     "Due Today",
		},
		{
			// Rounding up puts any future deadline into at least day 1.
			name:     "a few hours ahead",
			deadline: now.Add(6 * time.Hour),
			want:     "Due Tomorrow",
		},
		{
			name:     "within the next day",
			deadline: now.Add(20 * time.Hour),
			want:     "Due Tomorrow",
		},
		{
			name:     "two days out",
			deadline: now.Add(48 * time.Hour),
			want:     "2 days left",
		},
		{
			name:     "a week out",
			deadline: now.Add(7 * 24 * time.Hour),
			want:     "7 days left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignmentStatus(tt.deadline, now, tt.submitted)
			if got != tt.want {
				t.Errorf("AssignmentStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTestStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "already held",
			date: now.Add(-24 * time.Hour),
			want: "Completed",
		},
		{
			name: "earlier today",
			date: now.Add(-2 * time.Hour),
			want: "Today",
		},
		{
			name: "exactly now",
			date: now,
			want: "Today",
		},
		{
			name: "a few hours ahead",
			date: now.Add(3 * time.Hour),
			want: "Tomorrow",
		},
		{
			name: "three days out",
			date: now.Add(72 * time.Hour),
			want: "3 days left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TestStatus(tt.date, now)
			if got != tt.want {
				t.Errorf("TestStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDaysUntilRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := daysUntil(now.Add(25*time.Hour), now); got != 2 {
		t.Errorf("daysUntil(25h) = %d, want 2", got)
	}
	if got := daysUntil(now.Add(24*time.Hour), now); got != 1 {
		t.Errorf("daysUntil(24h) = %d, want 1", got)
	}
	if got := daysUntil(now.Add(-time.Second), now); got != 0 {
		t.Errorf("daysUntil(-1s) = %d, want 0", got)
	}
	if got := daysUntil(now.Add(-25*time.Hour), now); got != -1 {
		t.Errorf("daysUntil(-25h) = %d, want -1", got)
	}
}
