package petrifile_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aarkue/rust4pm/petrifile"
	"github.com/aarkue/rust4pm/petrinet"
)

func TestSaveLoad(t *testing.T) {
	p1 := petrinet.NewPlace("source")
	p2 := petrinet.NewPlace("sink")
	t1 := petrinet.NewTransition("t1", "handle case")
	n := petrinet.New([]*petrinet.Place{p1, p2}, []*petrinet.Transition{t1})
	if _, err := n.AddArc(p1, t1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddArc(t1, p2, 2); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	s := &petrifile.Service{}
	err := s.Save(context.Background(), &buf, n, petrinet.Marking{p1: 1}, []petrinet.Marking{{p2: 1}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.Load(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("nil result")
	}
	if len(res.Net.Places) != 2 {
		t.Error("wrong places")
	}
	if len(res.Net.Transitions) != 1 {
		t.Error("wrong transitions")
	}
	if len(res.Net.Arcs) != 2 {
		t.Error("wrong arcs")
	}
	if len(res.InitialMarking) != 1 {
		t.Error("wrong initial marking")
	}
	if len(res.FinalMarking) != 1 {
		t.Error("wrong final marking")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}
