// Package graphviz renders Petri nets as graphviz documents, circles for
// places and boxes for transitions.
package graphviz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/aarkue/rust4pm/petrinet"
)

type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[petrinet.Node]*cgraph.Node
}

func (w *Writer) writePlace(i int, p *petrinet.Place) error {
	name := fmt.Sprintf("p%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	node.SetShape(cgraph.CircleShape)
	node.SetLabel(p.ID)
	node.Set("fontname", string(w.Font))
	w.mapping[p] = node
	return nil
}

func (w *Writer) writeTransition(i int, t *petrinet.Transition) error {
	name := fmt.Sprintf("t%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	w.mapping[t] = node
	node.SetShape(cgraph.BoxShape)
	node.SetLabel(t.String())
	node.Set("fontname", string(w.Font))
	return nil
}

func (w *Writer) writeArc(i int, a *petrinet.Arc) error {
	src := w.mapping[a.Src]
	dst := w.mapping[a.Dest]
	name := fmt.Sprintf("a%d", i)
	edge, err := w.g.CreateEdge(name, src, dst)
	if err != nil {
		return err
	}
	if a.Weight > 1 {
		edge.SetLabel(strconv.Itoa(a.Weight))
	}
	return nil
}

func (w *Writer) Flush(out io.Writer, n *petrinet.Net) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	for i, p := range n.Places {
		if err := w.writePlace(i, p); err != nil {
			return err
		}
	}
	for i, t := range n.Transitions {
		if err := w.writeTransition(i, t); err != nil {
			return err
		}
	}
	for i, a := range n.Arcs {
		if err := w.writeArc(i, a); err != nil {
			return err
		}
	}
	return graph.Render(w.g, graphviz.Format(w.Format), out)
}

type Font string

const (
	Helvetica Font = "Helvetica"
	SansSerif Font = "sans-serif"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	TopToBottom RankDir = "TB"
)

type Config struct {
	Name   string
	Format string
	Font
	RankDir
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "petrinet"
	}
	if config.Format == "" {
		config.Format = string(graphviz.XDOT)
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = LeftToRight
	}
	return &Writer{
		Config:  config,
		mapping: make(map[petrinet.Node]*cgraph.Node),
	}
}
