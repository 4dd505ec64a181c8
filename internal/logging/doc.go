// Package logging provides structured logging for mosaic.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation. The composition coordinator and the demo shell log
// through it; library consumers that do not care about logs use
// [NopLogger].
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (component, region, view-model identity)
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* methods share the underlying writer safely.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(logDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	regionLogger := logger.WithComponent("compose").WithRegion("Main")
//	regionLogger.Debug("view activated", "view_model_id", 42)
package logging
