package eventlog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSchemaViolation reports a document entry of the wrong shape. Absent
// attributes, events, and traces keys are not violations; they default to
// empty.
var ErrSchemaViolation = errors.New("eventlog: schema violation")

// Document is the dictionary form exchanged with the native engine.
type Document map[string]interface{}

// Encode converts a log to its nested dictionary form, preserving trace and
// event order.
func Encode(log *EventLog) Document {
	traces := make([]interface{}, len(log.Traces))
	for i, t := range log.Traces {
		events := make([]interface{}, len(t.Events))
		for j, e := range t.Events {
			events[j] = Document{"attributes": encodeAttributes(e.Attributes)}
		}
		traces[i] = Document{
			"attributes": encodeAttributes(t.Attributes),
			"events":     events,
		}
	}
	return Document{
		"attributes": encodeAttributes(log.Attributes),
		"traces":     traces,
	}
}

func encodeAttributes(attrs map[string]string) Document {
	doc := make(Document, len(attrs))
	for k, v := range attrs {
		doc[k] = v
	}
	return doc
}

// Decode is the inverse of Encode. Absent attributes, traces, and events
// keys default to empty; order is preserved exactly.
func Decode(doc Document) (*EventLog, error) {
	attrs, err := decodeAttributes(doc)
	if err != nil {
		return nil, fmt.Errorf("log %w", err)
	}
	log := &EventLog{Attributes: attrs}
	traces, err := optionalSlice(doc, "traces")
	if err != nil {
		return nil, err
	}
	for i, raw := range traces {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: trace %d is not a mapping", ErrSchemaViolation, i)
		}
		t, err := decodeTrace(entry)
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		log.Traces = append(log.Traces, t)
	}
	return log, nil
}

func decodeTrace(doc Document) (*Trace, error) {
	attrs, err := decodeAttributes(doc)
	if err != nil {
		return nil, err
	}
	t := &Trace{Attributes: attrs}
	events, err := optionalSlice(doc, "events")
	if err != nil {
		return nil, err
	}
	for i, raw := range events {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: event %d is not a mapping", ErrSchemaViolation, i)
		}
		eventAttrs, err := decodeAttributes(entry)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		t.Events = append(t.Events, &Event{Attributes: eventAttrs})
	}
	return t, nil
}

func decodeAttributes(doc Document) (map[string]string, error) {
	raw, ok := doc["attributes"]
	if !ok || raw == nil {
		return map[string]string{}, nil
	}
	entry, ok := asDocument(raw)
	if !ok {
		return nil, fmt.Errorf("%w: attributes is not a mapping", ErrSchemaViolation)
	}
	attrs := make(map[string]string, len(entry))
	for k, v := range entry {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q is not a string", ErrSchemaViolation, k)
		}
		attrs[k] = s
	}
	return attrs, nil
}

func optionalSlice(doc Document, key string) ([]interface{}, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	entry, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: key %q is not a sequence", ErrSchemaViolation, key)
	}
	return entry, nil
}

func asDocument(v interface{}) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]interface{}:
		return m, true
	}
	return nil, false
}

// Marshal encodes a log and serializes the document to JSON. The textual
// form is lossless for all string attribute values.
func Marshal(log *EventLog) ([]byte, error) {
	return json.Marshal(Encode(log))
}

// Unmarshal parses a JSON document and decodes it.
func Unmarshal(data []byte) (*EventLog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return Decode(doc)
}
