package calendar

import (
	"testing"
	"time"
)

func TestCursorAdvanceWrapsYear(t *testing.T) {
	cases := []struct {
		start Cursor
		delta int
		want  Cursor
	}{
		{Cursor{2024, 12}, 1, Cursor{2025, 1}},
		{Cursor{2024, 1}, -1, Cursor{2023, 12}},
		{Cursor{2024, 6}, 1, Cursor{2024, 7}},
		{Cursor{2024, 6}, -1, Cursor{2024, 5}},
		{Cursor{2024, 1}, -13, Cursor{2022, 12}},
		{Cursor{2024, 11}, 14, Cursor{2026, 1}},
		{Cursor{2024, 3}, 0, Cursor{2024, 3}},
	}
	for _, c := range cases {
		if got := c.start.Advance(c.delta); got != c.want {
			t.Errorf("%+v.Advance(%d) = %+v, want %+v", c.start, c.delta, got, c.want)
		}
	}
}

func TestCursorFor(t *testing.T) {
	at := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	if got := CursorFor(at); got != (Cursor{2024, 6}) {
		t.Errorf("CursorFor = %+v, want {2024 6}", got)
	}
}

func TestCursorLabel(t *testing.T) {
	if got := (Cursor{2024, 6}).Label(); got != "junio 2024" {
		t.Errorf("Label = %q, want %q", got, "junio 2024")
	}
	if got := (Cursor{2025, 1}).Label(); got != "enero 2025" {
		t.Errorf("Label = %q, want %q", got, "enero 2025")
	}
}
