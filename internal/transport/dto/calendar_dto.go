package dto

// CalendarRequest defines the month the HR calendar view asks for. Values
// outside 1..12 roll into the adjacent year before any date math happens.
type CalendarRequest struct {
	Month int `form:"month" validate:"omitempty"`
	Year  int `form:"year" validate:"omitempty,gte=1970,lte=9999"`
}

// CalendarCellResponse is one cell of the rendered month grid. Blank leading
// and trailing cells carry Day == 0.
type CalendarCellResponse struct {
	Day      int             `json:"day"`
	Date     string          `json:"date,omitempty"`
	IsToday  bool            `json:"is_today"`
	Events   []EventResponse `json:"events"`
	Overflow int             `json:"overflow"` // events beyond the displayed ones
}

type CalendarResponse struct {
	Year      int                    `json:"year"`
	Month     int                    `json:"month"`
	MonthName string                 `json:"month_name"`
	PrevMonth int                    `json:"prev_month"`
	PrevYear  int                    `json:"prev_year"`
	NextMonth int                    `json:"next_month"`
	NextYear  int                    `json:"next_year"`
	Cells     []CalendarCellResponse `json:"cells"`
	Events    []EventResponse        `json:"events"` // full month list, untruncated
}
