package main

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/DavidBallares/proyecto-gag/app/calendar"
)

func TestJSONScriptEmitsArrayInScriptContext(t *testing.T) {
	tmpl := template.Must(template.New("page").
		Funcs(template.FuncMap{"json": jsonScript}).
		Parse(`<script>var eventos = {{json .Events}};</script>`))

	id := 42
	events := []calendar.Event{
		{
			ID:       &id,
			Title:    "Riego - Tomate (Ibagué)",
			Date:     "2024-06-10",
			Category: calendar.CategoryTreatment,
			CropID:   7,
			Status:   "Pendiente",
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{"Events": events}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `var eventos = [{`) {
		t.Errorf("script payload is not a JS array literal: %s", out)
	}
	if strings.Contains(out, `var eventos = "`) {
		t.Errorf("script payload was escaped into a string literal: %s", out)
	}
	if !strings.Contains(out, `"id":42`) {
		t.Errorf("event id missing from payload: %s", out)
	}
}

func TestJSONScriptEmptyList(t *testing.T) {
	tmpl := template.Must(template.New("page").
		Funcs(template.FuncMap{"json": jsonScript}).
		Parse(`<script>var eventos = {{json .Events}};</script>`))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{"Events": []calendar.Event{}}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), `var eventos = [];`) {
		t.Errorf("empty list should render as a JS array literal: %s", buf.String())
	}
}
