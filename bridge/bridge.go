// Package bridge defines the boundary to the native computation engine.
// Calls are blocking and all-or-nothing: either a complete payload comes
// back or the call fails. The core never retries; callers that need bounded
// latency impose their own timeout through the context.
package bridge

import (
	"context"
	"errors"

	"github.com/aarkue/rust4pm/eventlog"
)

// ErrNativeBridge reports a failed or invalid engine call.
var ErrNativeBridge = errors.New("bridge: native engine call failed")

// Native is the external computation engine.
type Native interface {
	// TransformEventLog sends a serialized event-log payload to the engine
	// and returns the serialized result. The engine may transform the log
	// or merely echo it.
	TransformEventLog(ctx context.Context, payload []byte) ([]byte, error)
	// ImportXES asks the engine to parse an XES file and returns a
	// document decodable by the eventlog package. dateFormat is an opaque
	// hint passed through unmodified; "" means none.
	ImportXES(ctx context.Context, path string, dateFormat string) (eventlog.Document, error)
}
