package render

import (
	"fmt"
	"io"

	"github.com/0xalexb/confiddle/document"

	"github.com/BurntSushi/toml"
)

// renderTOML writes doc as TOML. The encoder orders keys itself: plain keys
// first, then tables, each group sorted by name.
func renderTOML(w io.Writer, doc any) error {
	m, err := document.NormalizeMapping(doc)
	if err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}

	err = toml.NewEncoder(w).Encode(m)
	if err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}

	return nil
}
