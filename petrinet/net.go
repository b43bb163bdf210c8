// Package petrinet models bipartite place/transition graphs and converts
// them to and from the dictionary form exchanged with the native engine.
package petrinet

import "errors"

type NodeKind int

const (
	PlaceNode NodeKind = iota
	TransitionNode
)

// Node is either a *Place or a *Transition.
type Node interface {
	Kind() NodeKind
	Identifier() string
}

// Place represents a place
type Place struct {
	ID string
}

func NewPlace(id string) *Place {
	return &Place{ID: id}
}

func (p *Place) Kind() NodeKind { return PlaceNode }

func (p *Place) Identifier() string { return p.ID }

func (p *Place) String() string { return p.ID }

// Transition represents a transition. Label is nil for silent transitions.
type Transition struct {
	ID    string
	Label *string
}

func NewTransition(id string, label ...string) *Transition {
	t := &Transition{ID: id}
	if len(label) > 0 {
		t.Label = &label[0]
	}
	return t
}

func (t *Transition) Kind() NodeKind { return TransitionNode }

func (t *Transition) Identifier() string { return t.ID }

func (t *Transition) String() string {
	if t.Label != nil {
		return *t.Label
	}
	return t.ID
}

// Arc is a weighted connection from a place to a transition or a transition
// to a place.
type Arc struct {
	Src    Node
	Dest   Node
	Weight int
}

func (a *Arc) String() string {
	return a.Src.Identifier() + " -> " + a.Dest.Identifier()
}

// Net struct
type Net struct {
	Places      []*Place
	Transitions []*Transition
	Arcs        []*Arc
}

func New(places []*Place, transitions []*Transition) *Net {
	return &Net{
		Places:      places,
		Transitions: transitions,
	}
}

// AddArc connects from to to with the given weight. Arcs are kept in
// insertion order and duplicates are allowed.
func (n *Net) AddArc(from, to Node, weight int) (*Arc, error) {
	if from.Kind() == to.Kind() {
		return nil, errors.New("cannot connect two places or two transitions")
	}
	if weight < 1 {
		return nil, errors.New("arc weight must be at least 1")
	}
	if !n.contains(from) || !n.contains(to) {
		return nil, errors.New("arc endpoint does not belong to the net")
	}
	a := &Arc{
		Src:    from,
		Dest:   to,
		Weight: weight,
	}
	n.Arcs = append(n.Arcs, a)
	return a, nil
}

func (n *Net) contains(node Node) bool {
	switch v := node.(type) {
	case *Place:
		for _, p := range n.Places {
			if p == v {
				return true
			}
		}
	case *Transition:
		for _, t := range n.Transitions {
			if t == v {
				return true
			}
		}
	}
	return false
}

// Place returns the place with the given id, or nil.
func (n *Net) Place(id string) *Place {
	for _, p := range n.Places {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Transition returns the transition with the given id, or nil.
func (n *Net) Transition(id string) *Transition {
	for _, t := range n.Transitions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Marking assigns token counts to places. Keys must be places of the
// owning net.
type Marking map[*Place]int
