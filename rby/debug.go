package rby

import "github.com/go-logr/logr"

// internalLogger discards everything until a caller hands one in.
var internalLogger = logr.Logger{}

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("rby")
}
