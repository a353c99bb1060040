package mansion

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// MaxDepth is the number of floors a map may have, counting the entrance.
const MaxDepth = 4

var (
	ErrNoBlueprint = errors.New("no blueprint")
	ErrTooDeep     = errors.New("blueprint deeper than the mansion allows")
	ErrEmptyName   = errors.New("room has no name")
)

//go:embed mansion.yaml
var defaultBlueprint []byte

// Blueprint describes a map before it is built.
type Blueprint struct {
	Name  string     `yaml:"name"`
	Clue  string     `yaml:"clue"`
	Left  *Blueprint `yaml:"left"`
	Right *Blueprint `yaml:"right"`
}

func ParseBlueprint(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("failed to decode blueprint: %w", err)
	}
	return &bp, nil
}

// DefaultBlueprint returns the layout of the mansion shipped with the game.
func DefaultBlueprint() (*Blueprint, error) {
	return ParseBlueprint(defaultBlueprint)
}

func (bp *Blueprint) depth() int {
	if bp == nil {
		return 0
	}
	return 1 + max(bp.Left.depth(), bp.Right.depth())
}

func (bp *Blueprint) Validate() error {
	if bp == nil {
		return ErrNoBlueprint
	}
	if d := bp.depth(); d > MaxDepth {
		return fmt.Errorf("%w: %d floors, at most %d", ErrTooDeep, d, MaxDepth)
	}
	return nil
}

// Builder turns a Blueprint into a tree of rooms.
type Builder struct {
	// Clues controls whether rooms carry the clues of the blueprint.
	Clues bool
	Log   zerolog.Logger
}

func NewBuilder(log zerolog.Logger) Builder {
	return Builder{Clues: true, Log: log}
}

// Build creates the rooms of bp. A room that cannot be created is left out
// together with everything behind it; the rest of the map is still built and
// the failures are returned joined. The root is nil only if the entrance
// itself failed or bp is invalid.
func (b Builder) Build(bp *Blueprint) (*Room, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	var errs []error
	root := b.build(bp, "entrance", &errs)
	return root, errors.Join(errs...)
}

func (b Builder) build(bp *Blueprint, path string, errs *[]error) *Room {
	if bp == nil {
		return nil
	}
	room, err := b.newRoom(bp)
	if err != nil {
		b.Log.Error().Err(err).Str("path", path).Msg("could not create room, skipping its wing")
		*errs = append(*errs, fmt.Errorf("%s: %w", path, err))
		return nil
	}
	room.left = b.build(bp.Left, path+"/left", errs)
	room.right = b.build(bp.Right, path+"/right", errs)
	return room
}

func (b Builder) newRoom(bp *Blueprint) (*Room, error) {
	if bp.Name == "" {
		return nil, ErrEmptyName
	}
	clue := ""
	if b.Clues {
		clue = bp.Clue
	}
	return NewRoom(bp.Name, clue), nil
}
