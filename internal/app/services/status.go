package services

import (
	"fmt"
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// daysUntil returns the millisecond distance from now to target in whole
// days, rounding partial days up. A target at or shortly before now yields
// 0, anything ahead at least 1, anything a full day past a negative value.
func daysUntil(target, now time.Time) int {
	diff := target.Sub(now).Milliseconds()
	return int(math.Ceil(float64(diff) / millisPerDay))
}

// AssignmentStatus derives the display status of an assignment for a student.
func AssignmentStatus(deadline, now time.Time, submitted bool) string {
	if submitted {
		return "Submitted"
	}
	switch days := daysUntil(deadline, now); {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due Today"
	case days == 1:
		return "Due Tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// TestStatus derives the display status of a scheduled test.
func TestStatus(date, now time.Time) string {
	switch days := daysUntil(date, now); {
	case days < 0:
		return "Completed"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
