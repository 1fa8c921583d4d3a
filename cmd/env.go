package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupEnvironment loads .env and configures zerolog on stderr. stdout is
// kept for the conversion report.
func setupEnvironment(verbose bool) {
	err := godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch {
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case levelStr == "":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		level, parseErr := zerolog.ParseLevel(levelStr)
		if parseErr != nil {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to warn.", levelStr)
		} else {
			zerolog.SetGlobalLevel(level)
		}
	}

	// reported only now so logging is configured first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	}
}
