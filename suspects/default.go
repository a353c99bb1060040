package suspects

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed suspects.yaml
var defaultAssociations []byte

// Association pairs one clue with the suspect it points to.
type Association struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

type casefile struct {
	Associations []Association `yaml:"associations"`
}

// ParseAssociations decodes a YAML casefile with a top-level associations list.
func ParseAssociations(data []byte) ([]Association, error) {
	var cf casefile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to decode associations: %w", err)
	}
	for i, a := range cf.Associations {
		if a.Clue == "" || a.Suspect == "" {
			return nil, fmt.Errorf("association %d: clue and suspect are required", i)
		}
	}
	return cf.Associations, nil
}

// Seed inserts every association in order and returns the clues whose earlier
// association got shadowed.
func (t *Table) Seed(assocs []Association) []string {
	var shadowed []string
	for _, a := range assocs {
		if t.Insert(a.Clue, a.Suspect) {
			shadowed = append(shadowed, a.Clue)
		}
	}
	return shadowed
}

// DefaultAssociations returns the built-in casefile.
func DefaultAssociations() ([]Association, error) {
	return ParseAssociations(defaultAssociations)
}
