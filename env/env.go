package env

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Environment struct {
	URI      string
	Exchange string
	EngineID string
}

// LoadEnv reads the AMQP engine settings from the environment, with .env as
// a fallback. Missing required keys are fatal.
func LoadEnv(logger *zap.Logger) *Environment {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file", zap.Error(err))
	}
	uri, ok := os.LookupEnv("RABBITMQ_URI")
	if !ok {
		logger.Fatal("RABBITMQ_URI not set")
	}
	exchange, ok := os.LookupEnv("AMQP_EXCHANGE")
	if !ok {
		logger.Fatal("AMQP_EXCHANGE not set")
	}
	engineID, ok := os.LookupEnv("ENGINE_ID")
	if !ok {
		logger.Fatal("ENGINE_ID not set")
	}
	return &Environment{
		URI:      uri,
		Exchange: exchange,
		EngineID: engineID,
	}
}
