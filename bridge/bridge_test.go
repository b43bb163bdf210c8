package bridge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aarkue/rust4pm/bridge"
	"github.com/aarkue/rust4pm/eventlog"
)

func TestEchoRoundTrip(t *testing.T) {
	log := eventlog.Synthetic(10, 5)
	payload, err := eventlog.Marshal(log)
	if err != nil {
		t.Fatal(err)
	}
	reply, err := bridge.Echo{}.TransformEventLog(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	back, err := eventlog.Unmarshal(reply)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Traces) != 10 || back.NumEvents() != 50 {
		t.Errorf("got %d traces and %d events, want 10 and 50", len(back.Traces), back.NumEvents())
	}
	if back.Traces[9].TraceID() != "Trace 9" {
		t.Errorf("got trace id %q, want %q", back.Traces[9].TraceID(), "Trace 9")
	}
}

func TestEchoRejectsInvalidPayload(t *testing.T) {
	_, err := bridge.Echo{}.TransformEventLog(context.Background(), []byte("not json"))
	if !errors.Is(err, bridge.ErrNativeBridge) {
		t.Errorf("got %v, want ErrNativeBridge", err)
	}
}

func TestEchoImportFails(t *testing.T) {
	_, err := bridge.Echo{}.ImportXES(context.Background(), "log.xes", "")
	if !errors.Is(err, bridge.ErrNativeBridge) {
		t.Errorf("got %v, want ErrNativeBridge", err)
	}
}
