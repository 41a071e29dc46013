package calendar

import (
	"strconv"
	"time"
)

// Cursor is the visible month of the calendar, navigated one month at a time.
// Month runs 1..12.
type Cursor struct {
	Year  int
	Month int
}

// CursorFor returns the cursor covering the given instant.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: int(t.Month())}
}

// Advance moves the cursor by delta months, wrapping the year on overflow and
// underflow. Any delta is accepted.
func (c Cursor) Advance(delta int) Cursor {
	months := c.Year*12 + (c.Month - 1) + delta
	year := months / 12
	month := months % 12
	if month < 0 {
		month += 12
		year--
	}
	return Cursor{Year: year, Month: month + 1}
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Label is the header text for the visible month, e.g. "junio 2024".
func (c Cursor) Label() string {
	return monthNames[c.Month-1] + " " + strconv.Itoa(c.Year)
}
