package meshfile

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyanya/navmesh"
)

// Metadata is the optional, non-geometric information a YAML sidecar can
// carry alongside a text mesh file: the positional format has no room for
// any of this, and nothing in navmesh or pathfind reads it back.
type Metadata struct {
	Name       string            `yaml:"name"`
	Units      string            `yaml:"units"`
	Source     string            `yaml:"source"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// LoadWithMetadata reads a mesh from r and, if sidecar is non-nil, decodes
// a Metadata value from it. A nil sidecar (or one with no content) yields a
// zero Metadata and is not an error.
func LoadWithMetadata(r io.Reader, sidecar io.Reader) (*navmesh.Mesh, Metadata, error) {
	mesh, err := Load(r)
	if err != nil {
		return nil, Metadata{}, err
	}
	if sidecar == nil {
		return mesh, Metadata{}, nil
	}

	var meta Metadata
	if err := yaml.NewDecoder(sidecar).Decode(&meta); err != nil && err != io.EOF {
		return nil, Metadata{}, err
	}
	return mesh, meta, nil
}
