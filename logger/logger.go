// Package logger provides adapters for popular logger libraries to work with btree's Logger interface.
//
// Note that the standard library's slog.Logger already implements btree.Logger directly.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewProduction()
//	tree, err := btree.New[int, string](4, btree.WithLogger(logger.NewZap(zapLogger)))
package logger
