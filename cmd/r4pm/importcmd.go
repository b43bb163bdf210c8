package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/couch"
	"github.com/aarkue/rust4pm/eventlog"
)

var (
	importDateFormat string
	importStoreID    string
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "import an XES file through the engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		doc, err := engine.ImportXES(cmd.Context(), args[0], importDateFormat)
		if err != nil {
			return err
		}
		log, err := eventlog.Decode(doc)
		if err != nil {
			return err
		}
		logger.Info("imported",
			zap.String("path", args[0]),
			zap.Int("traces", len(log.Traces)),
			zap.Int("events", log.NumEvents()))

		if importStoreID == "" {
			return nil
		}
		store, err := couch.Open(couch.LoadConfig().URI(), "eventlogs")
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()
		if err := store.Put(cmd.Context(), importStoreID, doc); err != nil {
			return err
		}
		logger.Info("stored", zap.String("id", importStoreID))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDateFormat, "date-format", "", "date parsing hint passed to the engine")
	importCmd.Flags().StringVar(&importStoreID, "store", "", "store the imported log in CouchDB under this id")
	rootCmd.AddCommand(importCmd)
}
