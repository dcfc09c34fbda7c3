// Package undo implements a bounded linear undo history.
//
// The history is an ordered sequence of opaque reversible records with a
// current position. Undo moves the position left and reverts the record it
// steps over; redo moves it right and re-applies. Pushing a new record
// truncates everything to the right of the position (classic linear undo,
// not a tree) and evicts the oldest record once the configured capacity is
// exceeded.
//
// The history never inspects its records; constructing records that mutate
// the document is the mediator's job.
package undo

// Record is one reversible unit of document mutation. Undo must exactly
// revert what Redo applies; the history calls them strictly alternately
// for any given record.
type Record interface {
	Undo()
	Redo()
}

// DefaultCapacity bounds the history when no explicit capacity is given.
const DefaultCapacity = 128

// History is a bounded stack of reversible edit records with a cursor.
//
// Invariants: CanUndo ⇔ position > 0, CanRedo ⇔ position < length.
// The zero value is not usable; use [NewHistory].
type History struct {
	records  []Record
	position int
	capacity int
}

// NewHistory creates a history bounded to capacity records.
// A capacity below 1 falls back to [DefaultCapacity].
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Push appends a record at the current position, discarding any redo tail.
// The record is assumed to describe a mutation that has already been
// applied to the document. If the history exceeds its capacity the oldest
// record is evicted.
func (h *History) Push(r Record) {
	h.records = append(h.records[:h.position], r)
	h.position = len(h.records)

	if len(h.records) > h.capacity {
		n := len(h.records) - h.capacity
		h.records = h.records[n:]
		h.position -= n
	}
}

// Undo reverts the record just before the cursor. It is a no-op, not an
// error, when there is nothing to undo.
func (h *History) Undo() {
	if !h.CanUndo() {
		return
	}
	h.position--
	h.records[h.position].Undo()
}

// Redo re-applies the record at the cursor. It is a no-op, not an error,
// when there is nothing to redo.
func (h *History) Redo() {
	if !h.CanRedo() {
		return
	}
	h.records[h.position].Redo()
	h.position++
}

// CanUndo reports whether at least one record precedes the cursor.
func (h *History) CanUndo() bool { return h.position > 0 }

// CanRedo reports whether at least one record follows the cursor.
func (h *History) CanRedo() bool { return h.position < len(h.records) }

// Len returns the number of stored records.
func (h *History) Len() int { return len(h.records) }

// Clear discards all records, e.g. after opening another document.
func (h *History) Clear() {
	h.records = nil
	h.position = 0
}
