package bridge

import (
	"context"
	"fmt"

	"github.com/aarkue/rust4pm/eventlog"
)

// Echo is a Native that returns payloads unchanged after checking they
// parse. It stands in for the engine when validating the serialization
// round trip end to end.
type Echo struct{}

var _ Native = Echo{}

func (Echo) TransformEventLog(_ context.Context, payload []byte) ([]byte, error) {
	if _, err := eventlog.Unmarshal(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	return payload, nil
}

func (Echo) ImportXES(context.Context, string, string) (eventlog.Document, error) {
	return nil, fmt.Errorf("%w: echo engine cannot import XES", ErrNativeBridge)
}
