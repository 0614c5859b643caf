package armada

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger installs the logger the engine reports through.
// The engine is silent until this is called.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("armada")
}

var boardLogger = func() logr.Logger {
	return internalLogger.WithName("board")
}

var matchLogger = func() logr.Logger {
	return internalLogger.WithName("match")
}
