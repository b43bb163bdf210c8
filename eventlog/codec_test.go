package eventlog_test

import (
	"errors"
	"testing"

	"github.com/aarkue/rust4pm/eventlog"
)

func logsEqual(t *testing.T, got, want *eventlog.EventLog) {
	t.Helper()
	attrsEqual(t, "log", got.Attributes, want.Attributes)
	if len(got.Traces) != len(want.Traces) {
		t.Fatalf("got %d traces, want %d", len(got.Traces), len(want.Traces))
	}
	for i := range want.Traces {
		attrsEqual(t, "trace", got.Traces[i].Attributes, want.Traces[i].Attributes)
		if len(got.Traces[i].Events) != len(want.Traces[i].Events) {
			t.Fatalf("trace %d: got %d events, want %d", i, len(got.Traces[i].Events), len(want.Traces[i].Events))
		}
		for j := range want.Traces[i].Events {
			attrsEqual(t, "event", got.Traces[i].Events[j].Attributes, want.Traces[i].Events[j].Attributes)
		}
	}
}

func attrsEqual(t *testing.T, level string, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got attributes %v, want %v", level, got, want)
		return
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: attribute %q: got %q, want %q", level, k, got[k], v)
		}
	}
}

func TestSynthetic(t *testing.T) {
	log := eventlog.Synthetic(3, 2)
	if len(log.Traces) != 3 {
		t.Fatalf("got %d traces, want 3", len(log.Traces))
	}
	if log.Attributes["name"] == "" {
		t.Error("log has no name attribute")
	}
	for i, tr := range log.Traces {
		want := "Trace " + string(rune('0'+i))
		if tr.TraceID() != want {
			t.Errorf("got trace id %q, want %q", tr.TraceID(), want)
		}
		if len(tr.Events) != 2 {
			t.Fatalf("trace %d: got %d events, want 2", i, len(tr.Events))
		}
		for j, e := range tr.Events {
			want := "Activity " + string(rune('0'+j))
			if e.Activity() != want {
				t.Errorf("got activity %q, want %q", e.Activity(), want)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	logs := map[string]*eventlog.EventLog{
		"synthetic": eventlog.Synthetic(4, 3),
		"empty":     eventlog.NewEventLog(),
		"emptyTrace": {
			Attributes: map[string]string{},
			Traces:     []*eventlog.Trace{eventlog.NewTrace("only")},
		},
		"reservedValues": {
			Attributes: map[string]string{"traces": "events", "": ""},
			Traces: []*eventlog.Trace{
				{
					Attributes: map[string]string{eventlog.TraceIDKey: "attributes"},
					Events:     []*eventlog.Event{eventlog.NewEvent("")},
				},
			},
		},
	}
	for name, log := range logs {
		t.Run(name, func(t *testing.T) {
			decoded, err := eventlog.Decode(eventlog.Encode(log))
			if err != nil {
				t.Fatal(err)
			}
			logsEqual(t, decoded, log)

			data, err := eventlog.Marshal(log)
			if err != nil {
				t.Fatal(err)
			}
			parsed, err := eventlog.Unmarshal(data)
			if err != nil {
				t.Fatal(err)
			}
			logsEqual(t, parsed, log)
		})
	}
}

func TestDecodeDefaultsAbsentKeys(t *testing.T) {
	log, err := eventlog.Decode(eventlog.Document{
		"traces": []interface{}{
			eventlog.Document{},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if log.Attributes == nil || len(log.Attributes) != 0 {
		t.Errorf("got log attributes %v, want empty", log.Attributes)
	}
	if len(log.Traces) != 1 {
		t.Fatalf("got %d traces, want 1", len(log.Traces))
	}
	if len(log.Traces[0].Events) != 0 {
		t.Errorf("got %d events, want 0", len(log.Traces[0].Events))
	}
	if len(log.Traces[0].Attributes) != 0 {
		t.Errorf("got trace attributes %v, want empty", log.Traces[0].Attributes)
	}
}

func TestDecodeRejectsNonStringAttribute(t *testing.T) {
	_, err := eventlog.Decode(eventlog.Document{
		"attributes": eventlog.Document{"count": 3},
	})
	if !errors.Is(err, eventlog.ErrSchemaViolation) {
		t.Errorf("got %v, want ErrSchemaViolation", err)
	}
}

func TestEventOrderPreserved(t *testing.T) {
	log := eventlog.Synthetic(1, 50)
	decoded, err := eventlog.Unmarshal(mustMarshal(t, log))
	if err != nil {
		t.Fatal(err)
	}
	for j, e := range decoded.Traces[0].Events {
		if e.Activity() != log.Traces[0].Events[j].Activity() {
			t.Fatalf("event %d out of order: got %q", j, e.Activity())
		}
	}
}

func mustMarshal(t *testing.T, log *eventlog.EventLog) []byte {
	t.Helper()
	data, err := eventlog.Marshal(log)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
