package renderer

import (
	"log"

	"github.com/df07/sdl-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger through the standard log package.
// It writes to stderr so image data on stdout stays intact.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// discardLogger drops all output
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
