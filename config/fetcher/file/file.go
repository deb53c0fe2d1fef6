package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that reads fpath and caches its contents.
// The constructor shape lets an fx container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := readFile(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- reading a user supplied configuration file is the purpose
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
	}

	return io.ReadAll(f)
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Ext returns the lower-cased extension of the file without the leading dot.
func (f *Fetcher) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.filepath)), ".")
}

// Fetch returns a copy of the cached contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
