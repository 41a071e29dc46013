package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot of the month grid. Blank padding cells have Day 0 and an
// empty Date.
type Cell struct {
	Day    int
	Date   string
	Today  bool
	Events []Event
}

// Blank reports whether the cell pads the grid outside the visible month.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid is the rendered month: full weeks of seven cells, Sunday first.
type Grid struct {
	Cursor Cursor
	Weeks  [][]Cell
}

// Render lays out the visible month and places every event whose date falls
// on a cell, keeping input order within a day. The input slice is not
// modified; rendering the same inputs twice yields the same grid.
func Render(cursor Cursor, today string, events []Event) Grid {
	first := time.Date(cursor.Year, time.Month(cursor.Month), 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // 0 = Sunday
	daysInMonth := first.AddDate(0, 1, -1).Day()

	rows := (lead + daysInMonth + 6) / 7
	cells := make([]Cell, rows*7)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", cursor.Year, cursor.Month, day)
		cells[lead+day-1] = Cell{
			Day:    day,
			Date:   date,
			Today:  date == today,
			Events: eventsOn(events, date),
		}
	}

	weeks := make([][]Cell, rows)
	for i := range weeks {
		weeks[i] = cells[i*7 : (i+1)*7]
	}
	return Grid{Cursor: cursor, Weeks: weeks}
}

// eventsOn returns the stable subsequence of events anchored to date.
func eventsOn(events []Event, date string) []Event {
	var out []Event
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}
