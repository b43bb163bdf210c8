package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/eventlog"
)

var (
	benchTraces int
	benchEvents int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "round-trip a synthetic event log through the engine",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := eventlog.Synthetic(benchTraces, benchEvents)

		start := time.Now()
		payload, err := eventlog.Marshal(log)
		if err != nil {
			return err
		}
		logger.Info("log serialized",
			zap.Int("traces", benchTraces),
			zap.Int("events", log.NumEvents()),
			zap.Int("bytes", len(payload)),
			zap.Duration("took", time.Since(start)))

		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		start = time.Now()
		reply, err := engine.TransformEventLog(cmd.Context(), payload)
		if err != nil {
			return err
		}
		logger.Info("engine call done", zap.Duration("took", time.Since(start)))

		start = time.Now()
		back, err := eventlog.Unmarshal(reply)
		if err != nil {
			return err
		}
		logger.Info("reply decoded",
			zap.Int("traces", len(back.Traces)),
			zap.Int("events", back.NumEvents()),
			zap.Duration("took", time.Since(start)))

		if len(back.Traces) != len(log.Traces) || back.NumEvents() != log.NumEvents() {
			return fmt.Errorf("round trip changed the log: %d traces / %d events",
				len(back.Traces), back.NumEvents())
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchTraces, "traces", 1000, "number of synthetic traces")
	benchCmd.Flags().IntVar(&benchEvents, "events", 10, "events per trace")
	rootCmd.AddCommand(benchCmd)
}
