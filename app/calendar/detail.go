package calendar

import (
	"errors"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

// DetailState is the detail surface's position in its interaction cycle.
type DetailState int

const (
	StateClosed DetailState = iota
	StateViewing
)

// ErrNotSelectable is returned when a synthetic harvest marker is opened;
// only treatment-backed events carry enough identity for the detail surface.
var ErrNotSelectable = errors.New("calendar: event has no treatment id")

// ValidationError rejects completion input before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RemoteError carries a failure reported by the completion endpoint. Its
// message is surfaced to the user verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// CompleteFunc persists a treatment completion. ok false means the endpoint
// answered with a failure and msg holds its message; a non-nil err means the
// request itself never completed.
type CompleteFunc func(treatmentID int, completionDate, notes string) (ok bool, msg string, err error)

// DetailFlow drives the event detail surface over a session-local event list.
// Opening, submitting and closing all run on the caller's goroutine; the only
// suspend point is the completion call, and a second submission while one is
// in flight is ignored rather than raced.
type DetailFlow struct {
	events   []Event
	state    DetailState
	current  int
	inFlight bool
}

// NewDetailFlow wraps the event list the calendar is showing. Successful
// completions patch the list in place so the caller's re-render sees them.
func NewDetailFlow(events []Event) *DetailFlow {
	return &DetailFlow{events: events, current: -1}
}

func (f *DetailFlow) State() DetailState { return f.state }

// Current returns the event under view.
func (f *DetailFlow) Current() (Event, bool) {
	if f.state != StateViewing || f.current < 0 {
		return Event{}, false
	}
	return f.events[f.current], true
}

// Open moves the flow to Viewing for the event at index.
func (f *DetailFlow) Open(index int) error {
	if index < 0 || index >= len(f.events) {
		return errors.New("calendar: event index out of range")
	}
	if !f.events[index].Selectable() {
		return ErrNotSelectable
	}
	f.state = StateViewing
	f.current = index
	return nil
}

// OpenByID opens the first event backed by the given treatment id.
func (f *DetailFlow) OpenByID(treatmentID int) error {
	for i := range f.events {
		if f.events[i].ID != nil && *f.events[i].ID == treatmentID {
			return f.Open(i)
		}
	}
	return errors.New("calendar: no event for treatment")
}

// CanComplete reports whether the completion sub-form is shown.
func (f *DetailFlow) CanComplete() bool {
	ev, ok := f.Current()
	return ok && ev.Status != string(models.TreatmentCompleted)
}

// Close dismisses the detail surface, discarding unsaved sub-form input. A
// completion still in flight keeps running; its result is simply no longer
// observed.
func (f *DetailFlow) Close() {
	f.state = StateClosed
	f.current = -1
}

// SubmitCompletion validates the sub-form and performs the completion call.
// On success the viewed event's status and category become completed in the
// shared list and the flow closes. Any failure leaves the list untouched and
// the flow in Viewing so the user can retry.
func (f *DetailFlow) SubmitCompletion(completionDate, notes string, complete CompleteFunc) error {
	if f.state != StateViewing {
		return errors.New("calendar: no event open")
	}
	if f.inFlight {
		return nil
	}
	if completionDate == "" {
		return &ValidationError{Message: "Por favor, selecciona la fecha de realización."}
	}

	ev := f.events[f.current]
	f.inFlight = true
	ok, msg, err := complete(*ev.ID, completionDate, notes)
	f.inFlight = false

	if err != nil {
		return err
	}
	if !ok {
		return &RemoteError{Message: msg}
	}

	f.events[f.current].Status = string(models.TreatmentCompleted)
	f.events[f.current].Category = CategoryCompleted
	f.Close()
	return nil
}
