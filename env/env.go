package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment holds the defaults the command line flags fall back to.
type Environment struct {
	// File is the automaton file, FSA_FILE.
	File string
	// Format overrides the format guessed from the file extension, FSA_FORMAT.
	Format string
	// Initial overrides the default initial state, FSA_INITIAL.
	Initial string
	// MaxStates bounds subset construction, FSA_MAX_STATES.
	MaxStates int
}

// LoadEnv reads .env files if present and then the process environment.
func LoadEnv(logger *zap.Logger, files ...string) *Environment {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Error loading .env file", zap.Error(err))
	}
	environ := &Environment{}
	if file, ok := os.LookupEnv("FSA_FILE"); ok {
		environ.File = file
	}
	if format, ok := os.LookupEnv("FSA_FORMAT"); ok {
		environ.Format = format
	}
	if initial, ok := os.LookupEnv("FSA_INITIAL"); ok {
		environ.Initial = initial
	}
	if maxStates, ok := os.LookupEnv("FSA_MAX_STATES"); ok {
		n, err := strconv.Atoi(maxStates)
		if err != nil {
			logger.Warn("Failed to parse FSA_MAX_STATES", zap.String("value", maxStates), zap.Error(err))
		} else {
			environ.MaxStates = n
		}
	}
	return environ
}
