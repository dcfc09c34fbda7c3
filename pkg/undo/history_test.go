package undo

import "testing"

// counter tracks a value through do/undo so tests can observe replay order.
type counter struct {
	value *int
	delta int
}

func (c counter) Undo() { *c.value -= c.delta }
func (c counter) Redo() { *c.value += c.delta }

func TestUndoRedoRoundtrip(t *testing.T) {
	const n = 5
	value := 0
	h := NewHistory(0)

	for i := 1; i <= n; i++ {
		value += i
		h.Push(counter{value: &value, delta: i})
	}

	for i := 0; i < n; i++ {
		h.Undo()
	}
	if h.CanUndo() {
		t.Error("CanUndo() = true after undoing everything")
	}
	if value != 0 {
		t.Errorf("value = %d after full undo, want 0", value)
	}

	h.Redo()
	if !h.CanRedo() {
		t.Error("CanRedo() = false with records remaining")
	}
	if value != 1 {
		t.Errorf("value = %d after one redo, want 1", value)
	}
}

func TestPushTruncatesRedoTail(t *testing.T) {
	value := 0
	h := NewHistory(0)

	for i := 0; i < 3; i++ {
		value++
		h.Push(counter{value: &value, delta: 1})
	}

	h.Undo()
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	value += 10
	h.Push(counter{value: &value, delta: 10})

	if h.CanRedo() {
		t.Error("CanRedo() = true after push, redo tail not truncated")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	value := 0
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		value++
		h.Push(counter{value: &value, delta: 1})
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want capacity 3", h.Len())
	}

	// Only the three newest records can be undone.
	for h.CanUndo() {
		h.Undo()
	}
	if value != 2 {
		t.Errorf("value = %d after exhausting undo, want 2 (two evicted records)", value)
	}
}

func TestNoopWhenUnavailable(t *testing.T) {
	h := NewHistory(0)

	// Neither call may panic on an empty history.
	h.Undo()
	h.Redo()

	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports availability")
	}
}

func TestClear(t *testing.T) {
	value := 0
	h := NewHistory(0)
	value++
	h.Push(counter{value: &value, delta: 1})

	h.Clear()
	if h.CanUndo() || h.CanRedo() || h.Len() != 0 {
		t.Error("Clear() left records behind")
	}
}
