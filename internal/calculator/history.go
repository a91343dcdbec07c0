package calculator

import "calc-engine/internal/expr"

// DefaultHistoryCapacity is the number of entries kept when no capacity is
// configured.
const DefaultHistoryCapacity = 50

// Entry records one successful evaluation.
type Entry struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// String formats the entry as "<expr> = <result>".
func (e Entry) String() string {
	return e.Expression + " = " + expr.FormatNumber(e.Result)
}

// History is a bounded log of entries, oldest first. When full, appending
// evicts the oldest entry.
type History struct {
	entries  []Entry
	capacity int
}

// NewHistory returns an empty log. A capacity below 1 uses
// DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

func (h *History) Append(e Entry) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, e)
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Cap() int { return h.capacity }

// Entries returns a copy of the log.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Lines returns every entry formatted with Entry.String.
func (h *History) Lines() []string {
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.String()
	}
	return lines
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}
