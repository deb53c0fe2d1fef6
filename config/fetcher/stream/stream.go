package stream

import (
	"errors"
	"io"
)

// ErrNilReader is returned when the fetcher is constructed without a reader.
var ErrNilReader = errors.New("nil reader")

// Fetcher implements config.DataFetcher over the contents of an io.Reader.
type Fetcher struct {
	data []byte
}

// NewFetcher returns a constructor function that reads r to the end and caches its contents.
func NewFetcher(r io.Reader) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if r == nil {
			return nil, ErrNilReader
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		return &Fetcher{data: data}, nil
	}
}

// Fetch returns a copy of the cached contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
