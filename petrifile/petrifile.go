// Package petrifile reads and writes the Petri net document form as YAML
// files, so nets can be inspected and edited by hand between engine calls.
package petrifile

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aarkue/rust4pm/petrinet"
)

type Service struct {
}

func (s *Service) Load(_ context.Context, r io.Reader) (*petrinet.DecodeResult, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return petrinet.Decode(doc)
}

func (s *Service) Save(_ context.Context, w io.Writer, n *petrinet.Net, initial petrinet.Marking, finals []petrinet.Marking) error {
	doc, err := petrinet.Encode(n, initial, finals)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer func() {
		_ = enc.Close()
	}()
	return enc.Encode(doc)
}
