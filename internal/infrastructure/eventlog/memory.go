package eventlog

import (
	"sync"
	"time"

	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

// Event is one captured pipeline event.
type Event struct {
	Level   interfaces.Level
	Message string
	At      time.Time
}

// MemorySink captures events in memory so tests can assert on them instead
// of reading a log file.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// Record implements interfaces.EventSink.
func (m *MemorySink) Record(level interfaces.Level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{Level: level, Message: message, At: time.Now()})
}

// Events returns a copy of everything recorded so far.
func (m *MemorySink) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Messages returns the recorded messages at the given level, in order.
func (m *MemorySink) Messages(level interfaces.Level) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
