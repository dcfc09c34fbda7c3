package observability

import "testing"

type recordingLifecycle struct {
	transitions int
	ignored     int
}

func (r *recordingLifecycle) OnTransition(from, event, to string) { r.transitions++ }
func (r *recordingLifecycle) OnEventIgnored(state, event string)  { r.ignored++ }

func TestSetAndResetLifecycleHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingLifecycle{}
	SetLifecycleHooks(rec)

	Lifecycle().OnTransition("Edit", "SaveRequested", "Saving")
	Lifecycle().OnEventIgnored("Saving", "UndoRequested")

	if rec.transitions != 1 || rec.ignored != 1 {
		t.Errorf("recorded %d/%d events, want 1/1", rec.transitions, rec.ignored)
	}

	Reset()
	if _, ok := Lifecycle().(NoopLifecycleHooks); !ok {
		t.Error("Reset() did not restore the no-op lifecycle hooks")
	}
}

func TestNilRegistrationKeepsCurrentHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingLifecycle{}
	SetLifecycleHooks(rec)
	SetLifecycleHooks(nil)

	Lifecycle().OnTransition("Edit", "OpenRequested", "AwaitingOpenChoice")
	if rec.transitions != 1 {
		t.Error("nil registration replaced the active hooks")
	}
}

func TestDocumentHooksDefaultToNoop(t *testing.T) {
	t.Cleanup(Reset)

	// Must not panic without registration.
	Document().OnOpen("map.heimer", nil)
	Document().OnSave("map.heimer", nil)
	Document().OnExport("map.png", "png", nil)
	Document().OnSnapshot("key", 42, nil)
}
