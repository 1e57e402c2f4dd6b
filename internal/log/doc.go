// Package log provides the structured loggers of optcompare, built on the
// standard slog package.
//
// PathHandler wraps any slog.Handler and rewrites attribute values that
// start with the user's home directory to "~", so logs showing export
// paths can be shared without revealing the local user name.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("figure written", "path", "/home/alice/out/l1_distances.png")
//	// path=~/out/l1_distances.png
//
//	slog.SetDefault(logger)
package log
