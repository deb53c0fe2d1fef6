// Package cli implements the confiddle command line tool.
//
// Each command follows the same shape: an XxxOptions struct holding its
// flags, NewXxxCmd binding the flags to a cobra.Command, and Run doing the
// work against the command's output streams.
package cli
