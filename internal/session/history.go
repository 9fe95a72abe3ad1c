// Package session keeps a short, in-memory calculation history per caller.
// Nothing here is persisted: a restart forgets every session.
package session

import (
	"sync"
	"time"

	"github.com/rs/xid"

	"voice-calculator/internal/interpreter"
)

// DefaultHistorySize is how many results a session remembers.
const DefaultHistorySize = 10

// Entry is one remembered calculation.
type Entry struct {
	ID          string    `json:"id" yaml:"id"`
	Input       string    `json:"input" yaml:"input"`
	Value       string    `json:"value" yaml:"value"`
	Explanation string    `json:"explanation" yaml:"explanation"`
	Tool        string    `json:"tool,omitempty" yaml:"tool,omitempty"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewEntry records result as the answer to input.
func NewEntry(input string, result interpreter.Result) Entry {
	return Entry{
		ID:          xid.New().String(),
		Input:       input,
		Value:       result.Value,
		Explanation: result.Explanation,
		Tool:        result.Tool,
		Timestamp:   time.Now().UTC(),
	}
}

// History holds the most recent entries, newest first.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewHistory returns an empty history keeping at most limit entries.
// A non-positive limit means DefaultHistorySize.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit}
}

// Add puts e at the front and drops the oldest entries past the limit.
func (h *History) Add(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
