package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a deck from path. Fields the file leaves out fall back to
// Default(). An empty path returns the default deck.
func Load(path string) (Deck, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	return Parse(b, path)
}

func Parse(b []byte, path string) (Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Deck{}, fmt.Errorf("parse deck %s: %w", path, err)
	}
	d = d.Merge(Default())
	if err := d.Validate(); err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}
