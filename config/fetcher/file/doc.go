// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once at construction time and cached, so every call to
// Fetch returns the same bytes for the lifetime of the fetcher.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Errors from the operating system are returned unchanged (*fs.PathError),
// so callers can match them with errors.Is(err, fs.ErrNotExist). A directory
// path yields an error matching ErrPathIsDirectory.
package file
