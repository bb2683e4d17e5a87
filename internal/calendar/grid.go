// Package calendar computes the month grid backing the HR interview calendar.
// Everything here is pure: no clock access, no persistence.
package calendar

import (
	"time"

	"job-portal-api/internal/models"
)

// MaxVisibleEvents is how many events a day cell displays before collapsing
// the rest into an overflow count. Display truncation only; the full list
// stays on the cell.
const MaxVisibleEvents = 2

// Cell is one slot of the month grid. Leading and trailing padding cells have
// Day == 0 and no date.
type Cell struct {
	Day     int
	Date    time.Time
	IsToday bool
	Events  []models.Event
}

// Blank reports whether the cell is a padding slot.
func (c Cell) Blank() bool { return c.Day == 0 }

// Visible returns the events the cell displays.
func (c Cell) Visible() []models.Event {
	if len(c.Events) <= MaxVisibleEvents {
		return c.Events
	}
	return c.Events[:MaxVisibleEvents]
}

// Overflow returns how many events the cell hides behind the "+N more" marker.
func (c Cell) Overflow() int {
	if len(c.Events) <= MaxVisibleEvents {
		return 0
	}
	return len(c.Events) - MaxVisibleEvents
}

// Grid is a rectangular month view: len(Cells) is always a multiple of 7.
type Grid struct {
	Year  int
	Month int
	Cells []Cell
}

// DaysInMonth returns the number of day cells (non-blank) in the grid.
func (g Grid) DaysInMonth() int {
	n := 0
	for _, c := range g.Cells {
		if !c.Blank() {
			n++
		}
	}
	return n
}

// Normalize rolls out-of-range months into the adjacent year. Month 0 becomes
// December of the previous year, month 13 January of the next. It must run
// before any other date arithmetic; "previous" from January lands on December.
func Normalize(year, month int) (int, int) {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return year, month
}

// BuildGrid computes the grid for (year, month). The month is normalized
// first. Events are bucketed by calendar date; an event dated inside the month
// lands in exactly one cell, events outside the month are ignored. today marks
// the IsToday cell. Always succeeds, even with no events.
func BuildGrid(year, month int, today time.Time, events []models.Event) Grid {
	year, month = Normalize(year, month)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	startingWeekday := int(first.Weekday()) // 0=Sunday .. 6=Saturday

	byDate := make(map[string][]models.Event, len(events))
	for _, ev := range events {
		byDate[ev.Date.Format("2006-01-02")] = append(byDate[ev.Date.Format("2006-01-02")], ev)
	}

	todayKey := today.Format("2006-01-02")

	cells := make([]Cell, 0, startingWeekday+daysInMonth+6)
	for i := 0; i < startingWeekday; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")
		cells = append(cells, Cell{
			Day:     day,
			Date:    date,
			IsToday: key == todayKey,
			Events:  byDate[key],
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}

	return Grid{Year: year, Month: month, Cells: cells}
}

// MonthBounds returns the first and last day of the (normalized) month,
// the range the event store is queried with.
func MonthBounds(year, month int) (time.Time, time.Time) {
	year, month = Normalize(year, month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
