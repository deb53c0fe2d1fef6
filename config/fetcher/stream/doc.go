// Package stream provides a DataFetcher that drains an io.Reader once.
//
// It backs configuration loaded from standard input, network bodies or any
// other reader. The reader is consumed at construction time; read errors are
// returned unchanged.
package stream
