package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/couch"
	"github.com/aarkue/rust4pm/eventlog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <id>",
	Short: "fetch a stored event log from CouchDB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := couch.Open(couch.LoadConfig().URI(), "eventlogs")
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()
		doc, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		log, err := eventlog.Decode(doc)
		if err != nil {
			return err
		}
		logger.Info("fetched",
			zap.String("id", args[0]),
			zap.String("name", log.Attributes["name"]),
			zap.Int("traces", len(log.Traces)),
			zap.Int("events", log.NumEvents()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
