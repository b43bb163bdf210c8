package petrinet

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Document is the dictionary form exchanged with the native engine. It is
// produced solely for transmission and discarded after decoding.
type Document map[string]interface{}

// Direction tags carried in an arc's from_to entry.
const (
	PlaceTransition = "PlaceTransition"
	TransitionPlace = "TransitionPlace"
)

// Encode converts a net and its optional markings to a Document. Every node
// receives a fresh identifier valid only within this call; identifiers from
// a previous encode of the same net are unrelated. A nil initial marking
// encodes as null. A nil finals slice encodes as null, an empty one as an
// empty list.
func Encode(net *Net, initial Marking, finals []Marking) (Document, error) {
	used := make(map[string]struct{}, len(net.Places)+len(net.Transitions))
	fresh := func() (string, error) {
		id := uuid.NewString()
		if _, dup := used[id]; dup {
			return "", fmt.Errorf("%w: generated id %q twice", ErrIdentityCollision, id)
		}
		used[id] = struct{}{}
		return id, nil
	}

	// Place and transition identifiers live in separate tables so a place
	// and a transition sharing an id can never be conflated.
	places := Document{}
	placeIDs := make(map[string]string, len(net.Places))
	seenPlaces := make(map[string]*Place, len(net.Places))
	for _, p := range net.Places {
		if prev, ok := seenPlaces[p.ID]; ok {
			if prev != p {
				return nil, fmt.Errorf("%w: two places share id %q", ErrIdentityCollision, p.ID)
			}
			continue
		}
		seenPlaces[p.ID] = p
		id, err := fresh()
		if err != nil {
			return nil, err
		}
		placeIDs[p.ID] = id
		places[id] = Document{"id": id}
	}

	transitions := Document{}
	transitionIDs := make(map[string]string, len(net.Transitions))
	seenTransitions := make(map[string]*Transition, len(net.Transitions))
	for _, t := range net.Transitions {
		if prev, ok := seenTransitions[t.ID]; ok {
			if prev != t {
				return nil, fmt.Errorf("%w: two transitions share id %q", ErrIdentityCollision, t.ID)
			}
			continue
		}
		seenTransitions[t.ID] = t
		id, err := fresh()
		if err != nil {
			return nil, err
		}
		transitionIDs[t.ID] = id
		var label interface{}
		if t.Label != nil {
			label = *t.Label
		}
		transitions[id] = Document{"id": id, "label": label}
	}

	arcs := make([]interface{}, 0, len(net.Arcs))
	for _, a := range net.Arcs {
		var tag, src, dest string
		var srcOK, destOK bool
		if a.Src.Kind() == PlaceNode {
			tag = PlaceTransition
			src, srcOK = placeIDs[a.Src.Identifier()]
			dest, destOK = transitionIDs[a.Dest.Identifier()]
		} else {
			tag = TransitionPlace
			src, srcOK = transitionIDs[a.Src.Identifier()]
			dest, destOK = placeIDs[a.Dest.Identifier()]
		}
		if !srcOK || !destOK {
			return nil, fmt.Errorf("%w: arc %s references a node outside the net", ErrMalformedGraph, a)
		}
		arcs = append(arcs, Document{
			"from_to": Document{
				"type":  tag,
				"nodes": []interface{}{src, dest},
			},
			"weight": a.Weight,
		})
	}

	var initialDoc interface{}
	if initial != nil {
		doc, err := encodeMarking(initial, placeIDs)
		if err != nil {
			return nil, err
		}
		initialDoc = doc
	}
	var finalsDoc interface{}
	if finals != nil {
		list := make([]interface{}, 0, len(finals))
		for _, fm := range finals {
			doc, err := encodeMarking(fm, placeIDs)
			if err != nil {
				return nil, err
			}
			list = append(list, doc)
		}
		finalsDoc = list
	}

	return Document{
		"places":          places,
		"transitions":     transitions,
		"arcs":            arcs,
		"initial_marking": initialDoc,
		"final_markings":  finalsDoc,
	}, nil
}

func encodeMarking(m Marking, placeIDs map[string]string) (Document, error) {
	doc := Document{}
	for p, count := range m {
		id, ok := placeIDs[p.ID]
		if !ok {
			return nil, fmt.Errorf("%w: marking references place %q outside the net", ErrUnknownPlaceReference, p.ID)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative token count for place %q", ErrSchemaViolation, p.ID)
		}
		doc[id] = count
	}
	return doc, nil
}

// DecodeResult is a net reconstructed from a document together with its
// markings. InitialMarking and FinalMarking are nil when the document held
// null; an empty final_markings list yields a non-nil empty FinalMarking.
type DecodeResult struct {
	Net            *Net
	InitialMarking Marking
	FinalMarking   Marking
	Warnings       []Warning
}

// Decode reconstructs a net from a Document produced by Encode or parsed
// from its JSON form. Only the first entry of final_markings is
// materialized; further entries raise MultipleFinalMarkingsWarning.
func Decode(doc Document) (*DecodeResult, error) {
	placeDocs, err := requireDocument(doc, "places")
	if err != nil {
		return nil, err
	}
	transitionDocs, err := requireDocument(doc, "transitions")
	if err != nil {
		return nil, err
	}
	arcDocs, err := requireSlice(doc, "arcs")
	if err != nil {
		return nil, err
	}

	placesByID := make(map[string]*Place, len(placeDocs))
	places := make([]*Place, 0, len(placeDocs))
	for key, raw := range placeDocs {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: place %q is not a mapping", ErrSchemaViolation, key)
		}
		id, ok := entry["id"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: place %q has no id", ErrSchemaViolation, key)
		}
		p := NewPlace(id)
		placesByID[id] = p
		places = append(places, p)
	}

	transitionsByID := make(map[string]*Transition, len(transitionDocs))
	transitions := make([]*Transition, 0, len(transitionDocs))
	for key, raw := range transitionDocs {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: transition %q is not a mapping", ErrSchemaViolation, key)
		}
		id, ok := entry["id"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: transition %q has no id", ErrSchemaViolation, key)
		}
		t := NewTransition(id)
		if label, ok := entry["label"].(string); ok {
			t.Label = &label
		} else if entry["label"] != nil {
			return nil, fmt.Errorf("%w: transition %q has a non-string label", ErrSchemaViolation, id)
		}
		transitionsByID[id] = t
		transitions = append(transitions, t)
	}

	net := New(places, transitions)
	for i, raw := range arcDocs {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: arc %d is not a mapping", ErrSchemaViolation, i)
		}
		fromTo, ok := asDocument(entry["from_to"])
		if !ok {
			return nil, fmt.Errorf("%w: arc %d has no from_to", ErrSchemaViolation, i)
		}
		tag, ok := fromTo["type"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: arc %d has no direction type", ErrSchemaViolation, i)
		}
		nodes, ok := asSlice(fromTo["nodes"])
		if !ok || len(nodes) != 2 {
			return nil, fmt.Errorf("%w: arc %d does not reference exactly two nodes", ErrSchemaViolation, i)
		}
		srcID, srcOK := nodes[0].(string)
		destID, destOK := nodes[1].(string)
		if !srcOK || !destOK {
			return nil, fmt.Errorf("%w: arc %d has non-string node ids", ErrSchemaViolation, i)
		}
		weight, ok := asInt(entry["weight"])
		if !ok || weight < 1 {
			return nil, fmt.Errorf("%w: arc %d has an invalid weight", ErrSchemaViolation, i)
		}

		var src, dest Node
		switch tag {
		case PlaceTransition:
			src, dest = lookup(placesByID, srcID), lookup(transitionsByID, destID)
		case TransitionPlace:
			src, dest = lookup(transitionsByID, srcID), lookup(placesByID, destID)
		default:
			return nil, fmt.Errorf("%w: arc %d has unknown direction %q", ErrSchemaViolation, i, tag)
		}
		if src == nil {
			return nil, fmt.Errorf("%w: arc references unknown node %q", ErrMalformedGraph, srcID)
		}
		if dest == nil {
			return nil, fmt.Errorf("%w: arc references unknown node %q", ErrMalformedGraph, destID)
		}
		net.Arcs = append(net.Arcs, &Arc{Src: src, Dest: dest, Weight: weight})
	}

	res := &DecodeResult{Net: net}
	if raw, ok := doc["initial_marking"]; ok && raw != nil {
		entry, ok := asDocument(raw)
		if !ok {
			return nil, fmt.Errorf("%w: initial_marking is not a mapping", ErrSchemaViolation)
		}
		m, err := decodeMarking(entry, placesByID)
		if err != nil {
			return nil, err
		}
		res.InitialMarking = m
	}
	if raw, ok := doc["final_markings"]; ok && raw != nil {
		list, ok := asSlice(raw)
		if !ok {
			return nil, fmt.Errorf("%w: final_markings is not a sequence", ErrSchemaViolation)
		}
		res.FinalMarking = Marking{}
		if len(list) > 0 {
			entry, ok := asDocument(list[0])
			if !ok {
				return nil, fmt.Errorf("%w: final marking is not a mapping", ErrSchemaViolation)
			}
			m, err := decodeMarking(entry, placesByID)
			if err != nil {
				return nil, err
			}
			res.FinalMarking = m
			if len(list) > 1 {
				res.Warnings = append(res.Warnings, MultipleFinalMarkingsWarning)
			}
		}
	}
	return res, nil
}

func decodeMarking(doc Document, placesByID map[string]*Place) (Marking, error) {
	m := make(Marking, len(doc))
	for id, raw := range doc {
		p, ok := placesByID[id]
		if !ok {
			return nil, fmt.Errorf("%w: marking references place %q outside the net", ErrUnknownPlaceReference, id)
		}
		count, ok := asInt(raw)
		if !ok || count < 0 {
			return nil, fmt.Errorf("%w: invalid token count for place %q", ErrSchemaViolation, id)
		}
		m[p] = count
	}
	return m, nil
}

// Marshal encodes a net and serializes the document to JSON.
func Marshal(net *Net, initial Marking, finals []Marking) ([]byte, error) {
	doc, err := Encode(net, initial, finals)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Unmarshal parses a JSON document and decodes it.
func Unmarshal(data []byte) (*DecodeResult, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return Decode(doc)
}

func lookup[T Node](byID map[string]T, id string) Node {
	if v, ok := byID[id]; ok {
		return v
	}
	return nil
}

func requireDocument(doc Document, key string) (Document, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, key)
	}
	entry, ok := asDocument(raw)
	if !ok {
		return nil, fmt.Errorf("%w: key %q is not a mapping", ErrSchemaViolation, key)
	}
	return entry, nil
}

func requireSlice(doc Document, key string) ([]interface{}, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, key)
	}
	entry, ok := asSlice(raw)
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

func asSlice(v interface{}) ([]interface{}, bool) {
	s, ok := v.([]interface{})
	return s, ok
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		i := int(n)
		return i, float64(i) == n
	}
	return 0, false
}
