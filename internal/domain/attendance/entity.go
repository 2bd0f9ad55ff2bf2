package attendance

import (
	"math"
	"time"
)

// StandardShiftHours is the daily cap on regular work hours. Time worked
// beyond it counts as extra hours.
const StandardShiftHours = 9.0

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  float64
	ExtraHours float64
	CreatedAt  time.Time

	// DTO
	EmployeeName string
}

// SplitHours divides the time between check-in and check-out into
// regular and extra hours, both rounded to two decimals.
func SplitHours(checkIn, checkOut time.Time) (work, extra float64) {
	hours := checkOut.Sub(checkIn).Hours()
	work = math.Min(hours, StandardShiftHours)
	extra = math.Max(0, hours-StandardShiftHours)
	return round2(work), round2(extra)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
