package porygon

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger sets the logger used by every calculation in this package.
// Nothing is logged until this is called.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("porygon")
}
