package grid

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// boardFile is the on-disk form of a board.
type boardFile struct {
	Name   string   `yaml:"name,omitempty"`
	Layout []string `yaml:"layout"`
}

// Decode reads a YAML board.
func Decode(r io.Reader) (*Board, string, error) {
	var file boardFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, "", fmt.Errorf("decode board: %w", err)
	}
	b, err := Parse(file.Layout)
	if err != nil {
		return nil, "", err
	}
	return b, file.Name, nil
}

// Encode writes b as YAML under name. Overlays are not written.
func (b *Board) Encode(w io.Writer, name string) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(boardFile{Name: name, Layout: b.Layout()}); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return encoder.Close()
}

// Load reads a board file from disk.
func Load(path string) (*Board, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// Save writes b to path, replacing any existing file.
func (b *Board) Save(path, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Encode(f, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
