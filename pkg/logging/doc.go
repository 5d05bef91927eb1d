// Package logging configures log/slog for the osgiver CLI and the osgiverd
// API server.
//
// Loggers write JSON to stderr and carry the module name and build version on
// every record. The level comes from an explicit argument or, when that is
// empty, from the LOG_LEVEL environment variable; INFO is the fallback.
// Debug level also records the source location of each call.
//
// Typical use in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("osgiverd", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// The CLI applies the --log-level flag after flag parsing:
//
//	logging.SetDefaultStructuredLoggerWithLevel("osgiver", version, "debug")
//
// Accepted levels (case-insensitive): debug, info, warn, warning, error.
//
// Output:
//
//	{"time":"2026-10-16T10:30:00Z","level":"INFO","msg":"translated","module":"osgiver","version":"v1.0.0","input":"1.2-SNAPSHOT"}
package logging
