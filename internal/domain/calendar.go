package domain

import "time"

// CalendarDay represents the availability of a single day in a boat's calendar
type CalendarDay struct {
	Date      time.Time
	Available bool
}

// Calendar represents a day-by-day availability map for one month
type Calendar struct {
	BoatID int64
	Month  time.Month
	Year   int
	Days   []CalendarDay
}

// UnavailableDays returns the number of days taken by active bookings
func (c *Calendar) UnavailableDays() int {
	count := 0
	for _, day := range c.Days {
		if !day.Available {
			count++
		}
	}
	return count
}
