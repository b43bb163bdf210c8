package graphviz_test

import (
	"bytes"
	"testing"

	"github.com/aarkue/rust4pm/graphviz"
	"github.com/aarkue/rust4pm/petrinet"
)

func TestWriter_Flush(t *testing.T) {
	p := petrinet.NewPlace("start")
	q := petrinet.NewPlace("end")
	tr := petrinet.NewTransition("t", "work")
	n := petrinet.New([]*petrinet.Place{p, q}, []*petrinet.Transition{tr})
	if _, err := n.AddArc(p, tr, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddArc(tr, q, 2); err != nil {
		t.Fatal(err)
	}
	w := graphviz.New(&graphviz.Config{})
	var buf bytes.Buffer
	if err := w.Flush(&buf, n); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty render")
	}
	out := buf.String()
	for _, want := range []string{"start", "end", "work"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("render does not mention %q", want)
		}
	}
}
