package petrinet

import "errors"

var (
	// ErrSchemaViolation reports a required key missing or of the wrong
	// shape in a document being decoded.
	ErrSchemaViolation = errors.New("petrinet: schema violation")
	// ErrMalformedGraph reports an arc referencing a node id that is not
	// present in the endpoint map selected by its direction tag.
	ErrMalformedGraph = errors.New("petrinet: malformed graph")
	// ErrUnknownPlaceReference reports a marking keyed by a place id that
	// does not belong to the net.
	ErrUnknownPlaceReference = errors.New("petrinet: unknown place reference")
	// ErrIdentityCollision reports two distinct node instances resolving
	// to the same identifier during one encode call.
	ErrIdentityCollision = errors.New("petrinet: identity collision")
)

// Warning is a non-fatal condition reported alongside a successful decode.
type Warning string

const MultipleFinalMarkingsWarning Warning = "more than one final marking supplied; only the first is used"
