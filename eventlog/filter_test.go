package eventlog_test

import (
	"testing"

	"github.com/aarkue/rust4pm/eventlog"
)

func TestFilterTraces(t *testing.T) {
	log := eventlog.Synthetic(5, 3)
	log.Traces[2].Events = log.Traces[2].Events[:1]

	t.Run("byAttribute", func(t *testing.T) {
		out, err := eventlog.FilterTraces(log, `attributes["case:concept:name"] == "Trace 1"`)
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Traces) != 1 || out.Traces[0].TraceID() != "Trace 1" {
			t.Errorf("got %d traces, want only Trace 1", len(out.Traces))
		}
	})
	t.Run("byLength", func(t *testing.T) {
		out, err := eventlog.FilterTraces(log, `length >= 3`)
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Traces) != 4 {
			t.Errorf("got %d traces, want 4", len(out.Traces))
		}
	})
	t.Run("byActivity", func(t *testing.T) {
		out, err := eventlog.FilterTraces(log, `"Activity 2" in activities`)
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Traces) != 4 {
			t.Errorf("got %d traces, want 4", len(out.Traces))
		}
	})
	t.Run("badExpression", func(t *testing.T) {
		if _, err := eventlog.FilterTraces(log, `length +`); err == nil {
			t.Error("expected compile error")
		}
	})
}
