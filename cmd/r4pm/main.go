package main

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/bridge"
	"github.com/aarkue/rust4pm/env"
)

var logger *zap.Logger

var engineKind string

var rootCmd = &cobra.Command{
	Use:   "r4pm",
	Short: "r4pm bridges Petri nets and event logs to the native process-mining engine",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engineKind, "engine", "amqp", "engine to call: amqp or echo")
}

// newEngine picks the engine named by --engine. The echo engine needs no
// broker and only supports the transform call.
func newEngine() (bridge.Native, func(), error) {
	if engineKind == "echo" {
		return bridge.Echo{}, func() {}, nil
	}
	e := env.LoadEnv(logger)
	conn, err := amqp.Dial(e.URI)
	if err != nil {
		return nil, nil, err
	}
	client, err := bridge.NewAMQPClient(conn, e.Exchange, e.EngineID, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
		_ = conn.Close()
	}
	return client, cleanup, nil
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}
