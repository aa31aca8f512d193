package history

// Unbounded disables the size cap.
const Unbounded = -1

// History is an ordered, truncatable list of records with a position cursor.
type History struct {
	records []Record
	pos     int
	max     int
}

// New returns an empty history capped at maxSize records. A negative
// maxSize leaves it unbounded.
func New(maxSize int) *History {
	if maxSize < 0 {
		maxSize = Unbounded
	}
	return &History{max: maxSize}
}

// Add drops the redo tail, appends r and trims to the size cap.
func (h *History) Add(r Record) {
	h.records = h.records[:h.pos]
	h.records = append(h.records, r)
	h.pos++
	h.trim()
}

// Current returns the most recently applied record for in-place batching,
// or nil at the base state. It never moves the position.
func (h *History) Current() *Record {
	if h.pos == 0 {
		return nil
	}
	return &h.records[h.pos-1]
}

// StepBack moves the position back one step and returns the record to undo.
func (h *History) StepBack() (Record, bool) {
	if h.pos == 0 {
		return Record{}, false
	}
	h.pos--
	return h.records[h.pos], true
}

// StepForward returns the record to redo and moves the position past it.
func (h *History) StepForward() (Record, bool) {
	if h.pos >= len(h.records) {
		return Record{}, false
	}
	r := h.records[h.pos]
	h.pos++
	return r, true
}

// Clear empties the history and resets the position.
func (h *History) Clear() {
	h.records = nil
	h.pos = 0
}

// SetMaxSize changes the size cap and trims immediately. A negative n
// removes the cap.
func (h *History) SetMaxSize(n int) {
	if n < 0 {
		n = Unbounded
	}
	h.max = n
	h.trim()
}

// MaxSize returns the size cap, or Unbounded.
func (h *History) MaxSize() int { return h.max }

func (h *History) CanUndo() bool { return h.pos > 0 }

func (h *History) CanRedo() bool { return h.pos < len(h.records) }

// Len returns the number of stored records, applied or not.
func (h *History) Len() int { return len(h.records) }

// Position returns the number of applied records.
func (h *History) Position() int { return h.pos }

// Records returns a copy of every stored record, oldest first.
func (h *History) Records() []Record {
	return append([]Record(nil), h.records...)
}

func (h *History) trim() {
	if h.max < 0 || len(h.records) <= h.max {
		return
	}
	excess := len(h.records) - h.max
	h.records = append([]Record(nil), h.records[excess:]...)
	h.pos -= excess
	if h.pos < 0 {
		h.pos = 0
	}
}
