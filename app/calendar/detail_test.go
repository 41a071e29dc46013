package calendar

import (
	"errors"
	"testing"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func detailEvents() []Event {
	id := 42
	return []Event{
		{
			ID: &id, Title: "Riego - Tomate (Ibagué)", Date: "2024-06-10",
			Category: CategoryTreatment, CropID: 7, Status: string(models.TreatmentPending),
		},
		{
			Title: "Cosecha Principal Est. - Tomate (Ibagué)", Date: "2024-06-30",
			Category: CategoryHarvest, CropID: 7, Status: string(models.TreatmentPending),
		},
	}
}

func TestDetailFlowSyntheticNotSelectable(t *testing.T) {
	flow := NewDetailFlow(detailEvents())
	if err := flow.Open(1); !errors.Is(err, ErrNotSelectable) {
		t.Fatalf("opening synthetic event: err = %v, want ErrNotSelectable", err)
	}
	if flow.State() != StateClosed {
		t.Error("flow should stay closed after rejected selection")
	}
}

func TestDetailFlowEmptyDateNeverCallsNetwork(t *testing.T) {
	flow := NewDetailFlow(detailEvents())
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}

	called := false
	err := flow.SubmitCompletion("", "notas", func(int, string, string) (bool, string, error) {
		called = true
		return true, "", nil
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if called {
		t.Error("network layer was called despite missing completion date")
	}
	if flow.State() != StateViewing {
		t.Error("flow should remain in Viewing after local rejection")
	}
}

func TestDetailFlowSuccessPatchesListAndCloses(t *testing.T) {
	events := detailEvents()
	flow := NewDetailFlow(events)
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}

	err := flow.SubmitCompletion("2024-06-11", "hecho", func(id int, date, notes string) (bool, string, error) {
		if id != 42 || date != "2024-06-11" || notes != "hecho" {
			t.Errorf("completion called with (%d, %q, %q)", id, date, notes)
		}
		return true, "OK", nil
	})
	if err != nil {
		t.Fatalf("SubmitCompletion: %v", err)
	}

	if flow.State() != StateClosed {
		t.Error("flow should close after a successful completion")
	}
	if events[0].Status != string(models.TreatmentCompleted) {
		t.Errorf("event status = %q, want %q", events[0].Status, models.TreatmentCompleted)
	}
	if events[0].Category != CategoryCompleted {
		t.Errorf("event category = %q, want %q", events[0].Category, CategoryCompleted)
	}
}

func TestDetailFlowRemoteFailureKeepsViewing(t *testing.T) {
	events := detailEvents()
	flow := NewDetailFlow(events)
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}

	err := flow.SubmitCompletion("2024-06-11", "", func(int, string, string) (bool, string, error) {
		return false, "tratamiento no encontrado", nil
	})

	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RemoteError", err)
	}
	if rerr.Message != "tratamiento no encontrado" {
		t.Errorf("remote message = %q, not surfaced verbatim", rerr.Message)
	}
	if flow.State() != StateViewing {
		t.Error("flow should remain in Viewing after remote failure")
	}
	if events[0].Status != string(models.TreatmentPending) {
		t.Error("event list must stay unmodified on failure")
	}
}

func TestDetailFlowNetworkFailureKeepsViewing(t *testing.T) {
	events := detailEvents()
	flow := NewDetailFlow(events)
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}

	netErr := errors.New("connection refused")
	err := flow.SubmitCompletion("2024-06-11", "", func(int, string, string) (bool, string, error) {
		return false, "", netErr
	})
	if !errors.Is(err, netErr) {
		t.Fatalf("err = %v, want network error", err)
	}
	if flow.State() != StateViewing {
		t.Error("flow should remain in Viewing after a network failure")
	}
	if events[0].Status != string(models.TreatmentPending) {
		t.Error("event list must stay unmodified on network failure")
	}
}

func TestDetailFlowIgnoresReentrantSubmit(t *testing.T) {
	events := detailEvents()
	flow := NewDetailFlow(events)
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}

	calls := 0
	err := flow.SubmitCompletion("2024-06-11", "", func(int, string, string) (bool, string, error) {
		calls++
		// A second click while the first request is in flight is ignored.
		if err := flow.SubmitCompletion("2024-06-11", "", func(int, string, string) (bool, string, error) {
			calls++
			return true, "", nil
		}); err != nil {
			t.Errorf("in-flight submit should be ignored, got %v", err)
		}
		return true, "OK", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("completion called %d times, want 1", calls)
	}
}

func TestDetailFlowCloseDiscardsView(t *testing.T) {
	flow := NewDetailFlow(detailEvents())
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}
	if !flow.CanComplete() {
		t.Error("pending treatment should expose the completion sub-form")
	}
	flow.Close()
	if flow.State() != StateClosed {
		t.Error("flow should be closed")
	}
	if _, ok := flow.Current(); ok {
		t.Error("no current event after close")
	}
}

func TestDetailFlowCompletedEventHidesSubForm(t *testing.T) {
	id := 42
	events := []Event{{
		ID: &id, Title: "Riego - Tomate (Ibagué)", Date: "2024-06-10",
		Category: CategoryCompleted, Status: string(models.TreatmentCompleted),
	}}
	flow := NewDetailFlow(events)
	if err := flow.Open(0); err != nil {
		t.Fatal(err)
	}
	if flow.CanComplete() {
		t.Error("completed treatment should hide the completion sub-form")
	}
}

func TestDetailFlowOpenByID(t *testing.T) {
	flow := NewDetailFlow(detailEvents())
	if err := flow.OpenByID(42); err != nil {
		t.Fatal(err)
	}
	ev, ok := flow.Current()
	if !ok || ev.ID == nil || *ev.ID != 42 {
		t.Errorf("Current() = %+v, want treatment 42", ev)
	}
	if err := flow.OpenByID(99); err == nil {
		t.Error("unknown treatment id should not open")
	}
}
