package bnctx

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Entry is one report recorded by a Queue.
type Entry struct {
	Module string
	Code   Code
	Time   time.Time
}

// Queue is an append-only, mutex-protected ErrorQueue.
// If a logger is attached every report is also logged at error level.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
	logger  *log.Logger
}

// NewQueue creates an empty Queue. logger may be nil.
func NewQueue(logger *log.Logger) *Queue {
	return &Queue{logger: logger}
}

var defaultQueue = NewQueue(nil)

// DefaultQueue returns the process-wide queue contexts report to when no
// other queue is configured.
func DefaultQueue() *Queue {
	return defaultQueue
}

// Report appends a new entry.
func (q *Queue) Report(module string, code Code) {
	q.mu.Lock()
	q.entries = append(q.entries, Entry{Module: module, Code: code, Time: time.Now()})
	q.mu.Unlock()

	if q.logger != nil {
		q.logger.Error("error reported", "module", module, "code", int(code), "reason", code)
	}
}

// Len returns the number of recorded entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Last returns the most recent entry, and false if the queue is empty.
func (q *Queue) Last() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	return q.entries[len(q.entries)-1], true
}

// Entries returns a copy of every recorded entry, oldest first.
func (q *Queue) Entries() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Clear drops every recorded entry.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = nil
}
