package calendar

import (
	"reflect"
	"testing"
)

func eventOn(date, title string) Event {
	return Event{Title: title, Date: date, Category: CategoryTreatment, Status: "Pendiente"}
}

func TestRenderLeadingBlanksAndRows(t *testing.T) {
	// June 2024 starts on a Saturday: six blanks, then 30 days over 6 rows.
	grid := Render(Cursor{2024, 6}, "2024-06-15", nil)
	if len(grid.Weeks) != 6 {
		t.Fatalf("June 2024 should span 6 rows, got %d", len(grid.Weeks))
	}
	for i := 0; i < 6; i++ {
		if !grid.Weeks[0][i].Blank() {
			t.Errorf("cell (0,%d) should be blank", i)
		}
	}
	if grid.Weeks[0][6].Day != 1 {
		t.Errorf("day 1 should land on Saturday, got day %d", grid.Weeks[0][6].Day)
	}
	if last := grid.Weeks[5][0]; last.Day != 30 || last.Date != "2024-06-30" {
		t.Errorf("day 30 misplaced: %+v", last)
	}

	// February 2026 starts on a Sunday and fits exactly four rows.
	grid = Render(Cursor{2026, 2}, "2026-02-01", nil)
	if len(grid.Weeks) != 4 {
		t.Fatalf("February 2026 should span 4 rows, got %d", len(grid.Weeks))
	}
	if grid.Weeks[0][0].Day != 1 {
		t.Errorf("day 1 should land on Sunday, got %d", grid.Weeks[0][0].Day)
	}
}

func TestRenderPlacesEventsOnMatchingCells(t *testing.T) {
	events := []Event{
		eventOn("2024-06-10", "Riego - Tomate (Ibagué)"),
		eventOn("2024-06-10", "Abono - Tomate (Ibagué)"),
		eventOn("2024-06-30", "Cosecha Final - Tomate (Ibagué)"),
		eventOn("2024-07-01", "Fuera del mes"),
	}

	grid := Render(Cursor{2024, 6}, "2024-06-15", events)
	placed := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			for _, e := range cell.Events {
				placed++
				if e.Date != cell.Date {
					t.Errorf("event %q placed on cell %q", e.Date, cell.Date)
				}
			}
			if cell.Date == "2024-06-10" {
				if len(cell.Events) != 2 {
					t.Fatalf("expected 2 events on 2024-06-10, got %d", len(cell.Events))
				}
				// Input order is preserved within the day.
				if cell.Events[0].Title != "Riego - Tomate (Ibagué)" {
					t.Errorf("day events out of input order: %+v", cell.Events)
				}
			}
		}
	}
	if placed != 3 {
		t.Errorf("placed %d events, want 3 (July event belongs to another month)", placed)
	}
}

func TestRenderTodayFlag(t *testing.T) {
	grid := Render(Cursor{2024, 6}, "2024-06-15", nil)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Today != (cell.Date == "2024-06-15") {
				t.Errorf("today flag wrong on %q", cell.Date)
			}
		}
	}

	// Today outside the visible month marks nothing.
	grid = Render(Cursor{2024, 7}, "2024-06-15", nil)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Today {
				t.Errorf("cell %q flagged today in the wrong month", cell.Date)
			}
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	events := []Event{
		eventOn("2024-06-10", "Riego"),
		eventOn("2024-06-30", "Cosecha Final"),
	}
	snapshot := make([]Event, len(events))
	copy(snapshot, events)

	first := Render(Cursor{2024, 6}, "2024-06-15", events)
	second := Render(Cursor{2024, 6}, "2024-06-15", events)
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering identical inputs twice produced different grids")
	}
	if !reflect.DeepEqual(events, snapshot) {
		t.Error("Render mutated its input event list")
	}
}

func TestRenderEmptyCells(t *testing.T) {
	grid := Render(Cursor{2024, 6}, "2024-06-15", nil)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if len(cell.Events) != 0 {
				t.Errorf("cell %q should have an empty event list", cell.Date)
			}
		}
	}
}
