package calendar

import (
	"reflect"
	"testing"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func tomatoCrop() models.Crop {
	return models.Crop{
		ID:               7,
		TypeName:         "Tomate",
		MunicipalityName: "Ibagué",
		StartDate:        "2024-03-01",
		EstimatedEndDate: "2024-06-30",
		StateID:          models.CropInProgress,
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		kind   string
		status models.TreatmentStatus
		want   Category
	}{
		{"Riego", models.TreatmentPending, CategoryTreatment},
		{"Riego", models.TreatmentCompleted, CategoryCompleted},
		{"Cosecha Final", models.TreatmentPending, CategoryHarvest},
		{"COSECHA temprana", models.TreatmentPending, CategoryHarvest},
		{"Fin Ciclo", models.TreatmentCompleted, CategoryHarvest},
		{"Fertilización", models.TreatmentPending, CategoryTreatment},
	}
	for _, c := range cases {
		if got := Classify(c.kind, c.status); got != c.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", c.kind, c.status, got, c.want)
		}
	}
}

func TestDeriveEventsSuppressesSyntheticWhenHarvestExists(t *testing.T) {
	crop := tomatoCrop()
	treatments := map[int][]models.Treatment{
		crop.ID: {
			{ID: 1, CropID: crop.ID, Kind: "Riego", EstimatedDate: "2024-06-10", Status: models.TreatmentPending},
			{ID: 2, CropID: crop.ID, Kind: "Cosecha Final", EstimatedDate: "2024-06-30", Status: models.TreatmentPending},
		},
	}

	events := DeriveEvents([]models.Crop{crop}, treatments)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if events[0].Category != CategoryTreatment {
		t.Errorf("Riego category = %q, want %q", events[0].Category, CategoryTreatment)
	}
	if events[1].Category != CategoryHarvest {
		t.Errorf("Cosecha Final category = %q, want %q", events[1].Category, CategoryHarvest)
	}

	// Exactly one harvest event on the end date for this crop.
	harvests := 0
	for _, e := range events {
		if e.Date == crop.EstimatedEndDate && e.Category == CategoryHarvest {
			harvests++
		}
	}
	if harvests != 1 {
		t.Errorf("harvest events on %s = %d, want 1", crop.EstimatedEndDate, harvests)
	}
}

func TestDeriveEventsAddsSyntheticHarvest(t *testing.T) {
	crop := tomatoCrop()
	treatments := map[int][]models.Treatment{
		crop.ID: {
			{ID: 1, CropID: crop.ID, Kind: "Riego", EstimatedDate: "2024-06-10", Status: models.TreatmentCompleted},
		},
	}

	events := DeriveEvents([]models.Crop{crop}, treatments)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if events[0].Category != CategoryCompleted {
		t.Errorf("completed Riego category = %q, want %q", events[0].Category, CategoryCompleted)
	}

	synthetic := events[1]
	if synthetic.ID != nil {
		t.Error("synthetic harvest event should have no treatment id")
	}
	if synthetic.Category != CategoryHarvest {
		t.Errorf("synthetic category = %q, want %q", synthetic.Category, CategoryHarvest)
	}
	if synthetic.Date != crop.EstimatedEndDate {
		t.Errorf("synthetic date = %q, want %q", synthetic.Date, crop.EstimatedEndDate)
	}
	if synthetic.Status != string(models.TreatmentPending) {
		t.Errorf("synthetic status = %q, want %q", synthetic.Status, models.TreatmentPending)
	}
	if want := "Cosecha Principal Est. - Tomate (Ibagué)"; synthetic.Title != want {
		t.Errorf("synthetic title = %q, want %q", synthetic.Title, want)
	}
}

func TestDeriveEventsCropWithoutTreatments(t *testing.T) {
	crop := tomatoCrop()
	events := DeriveEvents([]models.Crop{crop}, nil)
	if len(events) != 1 {
		t.Fatalf("crop with end date and no treatments should yield 1 synthetic event, got %d", len(events))
	}

	crop.EstimatedEndDate = ""
	events = DeriveEvents([]models.Crop{crop}, nil)
	if len(events) != 0 {
		t.Fatalf("crop without end date and no treatments should yield 0 events, got %d", len(events))
	}
}

func TestDeriveEventsKeepsRealDuplicates(t *testing.T) {
	crop := tomatoCrop()
	crop.EstimatedEndDate = ""
	treatments := map[int][]models.Treatment{
		crop.ID: {
			{ID: 1, CropID: crop.ID, Kind: "Riego", EstimatedDate: "2024-06-10", Status: models.TreatmentPending},
			{ID: 2, CropID: crop.ID, Kind: "Abono", EstimatedDate: "2024-06-10", Status: models.TreatmentPending},
		},
	}

	events := DeriveEvents([]models.Crop{crop}, treatments)
	if len(events) != 2 {
		t.Fatalf("treatments sharing a date must both survive, got %d events", len(events))
	}
}

func TestDeriveEventsSkipsTreatmentsWithoutDate(t *testing.T) {
	crop := tomatoCrop()
	crop.EstimatedEndDate = ""
	treatments := map[int][]models.Treatment{
		crop.ID: {
			{ID: 1, CropID: crop.ID, Kind: "Riego", Status: models.TreatmentPending},
		},
	}
	if events := DeriveEvents([]models.Crop{crop}, treatments); len(events) != 0 {
		t.Fatalf("undated treatment produced %d events, want 0", len(events))
	}
}

func TestDeriveEventsDescription(t *testing.T) {
	crop := tomatoCrop()
	crop.EstimatedEndDate = ""
	treatments := map[int][]models.Treatment{
		crop.ID: {
			{
				ID: 1, CropID: crop.ID, Kind: "Fertilización",
				ProductUsed: "Urea", Dose: "5kg/ha", Stage: "Crecimiento",
				Notes: "aplicar temprano", EstimatedDate: "2024-05-01",
				Status: models.TreatmentPending,
			},
			{
				ID: 2, CropID: crop.ID, Kind: "Riego",
				Stage: "Floración", EstimatedDate: "2024-05-02",
				Status: models.TreatmentPending,
			},
		},
	}

	events := DeriveEvents([]models.Crop{crop}, treatments)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	want := "Urea (5kg/ha) para Tomate (Ibagué). Etapa: Crecimiento. Obs: aplicar temprano"
	if events[0].Description != want {
		t.Errorf("description = %q, want %q", events[0].Description, want)
	}
	if got := events[1].Description; got[:3] != "N/A" {
		t.Errorf("missing product should describe as N/A, got %q", got)
	}
	if want := "Fertilización - Tomate (Ibagué)"; events[0].Title != want {
		t.Errorf("title = %q, want %q", events[0].Title, want)
	}
}

func TestDeriveEventsIsDeterministic(t *testing.T) {
	crops := []models.Crop{tomatoCrop(), {
		ID: 9, TypeName: "Café", MunicipalityName: "Líbano",
		EstimatedEndDate: "2024-09-15", StateID: models.CropInProgress,
	}}
	treatments := map[int][]models.Treatment{
		7: {{ID: 1, CropID: 7, Kind: "Riego", EstimatedDate: "2024-06-10", Status: models.TreatmentPending}},
		9: {{ID: 2, CropID: 9, Kind: "Poda", EstimatedDate: "2024-07-01", Status: models.TreatmentPending}},
	}

	a := DeriveEvents(crops, treatments)
	b := DeriveEvents(crops, treatments)
	if !reflect.DeepEqual(a, b) {
		t.Error("DeriveEvents is not deterministic for identical inputs")
	}
	if len(a) != 4 {
		t.Fatalf("expected 4 events across both crops, got %d", len(a))
	}
	if a[0].CropID != 7 || a[2].CropID != 9 {
		t.Error("events are not grouped in crop input order")
	}
}
