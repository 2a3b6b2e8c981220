package ebml

import "github.com/op/go-logging"

// Log is the package-scoped logger used for the one decode condition
// treated as non-fatal: an unrecognized child element inside a
// master's body is logged and skipped rather than aborting the
// decode. Embedders that want these events routed into their own
// backend can replace it wholesale with SetLogger.
var Log = logging.MustGetLogger("ebml")

// SetLogger overrides the package-scoped logger with one the embedder
// already configured, rather than baking a fixed backend into every
// call site.
func SetLogger(l *logging.Logger) {
	if l != nil {
		Log = l
	}
}
