package calendar

import (
	"testing"
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func eventOn(date time.Time, at string) models.Event {
	return models.Event{
		ID:           uuid.New(),
		HrUserID:     uuid.New(),
		SeekerUserID: uuid.New(),
		Title:        "Interview",
		EventType:    models.EventTypeInterview,
		Date:         date,
		Time:         at,
		Status:       models.EventStatusScheduled,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		inYear, inMon int
		year, month   int
	}{
		{"in range untouched", 2024, 6, 2024, 6},
		{"month zero rolls to previous december", 2024, 0, 2023, 12},
		{"month thirteen rolls to next january", 2024, 13, 2025, 1},
		{"large negative rolls multiple years", 2024, -11, 2022, 1},
		{"large positive rolls multiple years", 2024, 25, 2026, 1},
		{"december stays", 2024, 12, 2024, 12},
		{"january stays", 2024, 1, 2024, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, m := Normalize(tc.inYear, tc.inMon)
			assert.Equal(t, tc.year, y)
			assert.Equal(t, tc.month, m)
		})
	}
}

func TestBuildGrid_February2024(t *testing.T) {
	// Feb 2024: leap month, 29 days, the 1st is a Thursday (4 leading blanks).
	grid := BuildGrid(2024, 2, day(2024, time.February, 15), nil)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 2, grid.Month)
	assert.Equal(t, 29, grid.DaysInMonth())
	assert.Zero(t, len(grid.Cells)%7, "grid must be a whole number of weeks")

	for i := 0; i < 4; i++ {
		assert.True(t, grid.Cells[i].Blank(), "cell %d should be leading padding", i)
	}
	require.False(t, grid.Cells[4].Blank())
	assert.Equal(t, 1, grid.Cells[4].Day)

	// Day 15 is today.
	todayCount := 0
	for _, c := range grid.Cells {
		if c.IsToday {
			todayCount++
			assert.Equal(t, 15, c.Day)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestBuildGrid_NormalizesMonthFirst(t *testing.T) {
	// month 0 = December of the previous year.
	grid := BuildGrid(2024, 0, day(2024, time.June, 1), nil)
	assert.Equal(t, 2023, grid.Year)
	assert.Equal(t, 12, grid.Month)
	assert.Equal(t, 31, grid.DaysInMonth())
}

func TestBuildGrid_NoTodayOutsideMonth(t *testing.T) {
	grid := BuildGrid(2024, 2, day(2024, time.March, 1), nil)
	for _, c := range grid.Cells {
		assert.False(t, c.IsToday)
	}
}

func TestBuildGrid_BucketsEventsByDate(t *testing.T) {
	inMonth := eventOn(day(2024, time.February, 10), "09:00")
	sameDay := eventOn(day(2024, time.February, 10), "14:00")
	otherDay := eventOn(day(2024, time.February, 29), "10:00")
	outside := eventOn(day(2024, time.March, 1), "10:00")

	grid := BuildGrid(2024, 2, day(2024, time.February, 1), []models.Event{inMonth, sameDay, otherDay, outside})

	var found10, found29 *Cell
	total := 0
	for i := range grid.Cells {
		c := &grid.Cells[i]
		total += len(c.Events)
		switch c.Day {
		case 10:
			found10 = c
		case 29:
			found29 = c
		}
	}

	require.NotNil(t, found10)
	require.NotNil(t, found29)
	assert.Len(t, found10.Events, 2)
	assert.Len(t, found29.Events, 1)
	assert.Equal(t, 3, total, "the out-of-month event must not land anywhere")
}

func TestCell_VisibleAndOverflow(t *testing.T) {
	d := day(2024, time.February, 10)
	events := []models.Event{
		eventOn(d, "09:00"),
		eventOn(d, "10:00"),
		eventOn(d, "11:00"),
		eventOn(d, "12:00"),
	}

	grid := BuildGrid(2024, 2, d, events)

	var cell Cell
	for _, c := range grid.Cells {
		if c.Day == 10 {
			cell = c
		}
	}

	assert.Len(t, cell.Events, 4, "truncation is display-only")
	assert.Len(t, cell.Visible(), MaxVisibleEvents)
	assert.Equal(t, 2, cell.Overflow())

	// A cell at or under the cap shows everything.
	grid = BuildGrid(2024, 2, d, events[:2])
	for _, c := range grid.Cells {
		if c.Day == 10 {
			assert.Len(t, c.Visible(), 2)
			assert.Zero(t, c.Overflow())
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, 2)
	assert.Equal(t, day(2024, time.February, 1), start)
	assert.Equal(t, day(2024, time.February, 29), end)

	// Normalizes before computing bounds.
	start, end = MonthBounds(2024, 13)
	assert.Equal(t, day(2025, time.January, 1), start)
	assert.Equal(t, day(2025, time.January, 31), end)
}
