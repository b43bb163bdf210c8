package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/graphviz"
	"github.com/aarkue/rust4pm/petrifile"
)

var renderFormat string

var renderCmd = &cobra.Command{
	Use:   "render <net.yaml> <out>",
	Short: "render a Petri net file with graphviz",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = in.Close()
		}()
		res, err := (&petrifile.Service{}).Load(cmd.Context(), in)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			logger.Warn(string(w))
		}
		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer func() {
			_ = out.Close()
		}()
		w := graphviz.New(&graphviz.Config{Format: renderFormat})
		if err := w.Flush(out, res.Net); err != nil {
			return err
		}
		logger.Info("rendered",
			zap.String("net", args[0]),
			zap.String("out", args[1]),
			zap.Int("places", len(res.Net.Places)),
			zap.Int("transitions", len(res.Net.Transitions)))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "output format: svg, png, or xdot")
	rootCmd.AddCommand(renderCmd)
}
