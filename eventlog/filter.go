package eventlog

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// FilterTraces returns a new log containing the traces for which the
// expression evaluates to true. The expression sees each trace as
// {attributes, activities, length}. The input log is not modified; kept
// traces are shared, not copied.
func FilterTraces(log *EventLog, src string) (*EventLog, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("eventlog: compiling filter: %w", err)
	}
	out := &EventLog{Attributes: log.Attributes}
	for i, t := range log.Traces {
		env := map[string]interface{}{
			"attributes": t.Attributes,
			"activities": t.Activities(),
			"length":     len(t.Events),
		}
		v, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("eventlog: filtering trace %d: %w", i, err)
		}
		if v.(bool) {
			out.Traces = append(out.Traces, t)
		}
	}
	return out, nil
}
