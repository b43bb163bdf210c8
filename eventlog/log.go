// Package eventlog models hierarchical event logs (log, trace, event) and
// converts them to and from the dictionary form exchanged with the native
// engine.
package eventlog

import "strconv"

// Reserved attribute keys.
const (
	// ActivityKey holds the activity name of an event.
	ActivityKey = "concept:name"
	// TraceIDKey holds the case identifier of a trace.
	TraceIDKey = "case:concept:name"
)

// Event is a flat attribute map; the activity name lives under ActivityKey.
type Event struct {
	Attributes map[string]string
}

func NewEvent(activity string) *Event {
	return &Event{Attributes: map[string]string{ActivityKey: activity}}
}

// Activity returns the event's activity name, or "" when unset.
func (e *Event) Activity() string {
	return e.Attributes[ActivityKey]
}

// Trace is an ordered sequence of events belonging to one case. Event order
// is temporal and preserved exactly.
type Trace struct {
	Attributes map[string]string
	Events     []*Event
}

func NewTrace(traceID string, events ...*Event) *Trace {
	return &Trace{
		Attributes: map[string]string{TraceIDKey: traceID},
		Events:     events,
	}
}

// TraceID returns the trace's case identifier, or "" when unset.
func (t *Trace) TraceID() string {
	return t.Attributes[TraceIDKey]
}

// Activities returns the ordered activity names of the trace's events.
func (t *Trace) Activities() []string {
	acts := make([]string, len(t.Events))
	for i, e := range t.Events {
		acts[i] = e.Activity()
	}
	return acts
}

// EventLog is an ordered sequence of traces with log-level attributes.
type EventLog struct {
	Attributes map[string]string
	Traces     []*Trace
}

func NewEventLog() *EventLog {
	return &EventLog{Attributes: map[string]string{}}
}

// Synthetic builds a deterministic log for benchmarks and tests: numTraces
// traces named "Trace {i}", each with numEvents events named "Activity {j}".
func Synthetic(numTraces, numEvents int) *EventLog {
	log := NewEventLog()
	log.Attributes["name"] = "Synthetic event log"
	for i := 0; i < numTraces; i++ {
		events := make([]*Event, numEvents)
		for j := 0; j < numEvents; j++ {
			events[j] = NewEvent("Activity " + strconv.Itoa(j))
		}
		log.Traces = append(log.Traces, NewTrace("Trace "+strconv.Itoa(i), events...))
	}
	return log
}

// NumEvents returns the total event count across all traces.
func (l *EventLog) NumEvents() int {
	total := 0
	for _, t := range l.Traces {
		total += len(t.Events)
	}
	return total
}
