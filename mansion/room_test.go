package mansion

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func defaultMap(t *testing.T, clues bool) *Room {
	bp, err := DefaultBlueprint()
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	b := NewBuilder(zerolog.Nop())
	b.Clues = clues
	root, err := b.Build(bp)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return root
}

func TestDefaultMap(t *testing.T) {
	assert := assert.New(t)
	root := defaultMap(t, true)

	assert.Equal("Entrance Hall", root.Name())
	assert.Equal("Living Room", root.Left().Name())
	assert.Equal("Kitchen", root.Right().Name())
	assert.Equal("Library", root.Left().Left().Name())
	assert.Equal("Master Bedroom", root.Left().Left().Left().Name())
	assert.Equal("Bathroom", root.Left().Left().Right().Name())
	assert.Equal("", root.Left().Left().Right().Clue(), "the bathroom has no clue")
	assert.True(root.Right().Left().IsLeaf())
	assert.False(root.IsLeaf())
	assert.Equal(9, root.Len())
}

func TestDefaultMapWithoutClues(t *testing.T) {
	root := defaultMap(t, false)
	_, ok := root.Visit()
	assert.False(t, ok)
	assert.Equal(t, "", root.Right().Clue())
	assert.Equal(t, 9, root.Len())
}

func TestVisitClearsClue(t *testing.T) {
	assert := assert.New(t)

	r := NewRoom("Study", "ink stain")
	clue, ok := r.Visit()
	assert.True(ok)
	assert.Equal("ink stain", clue)

	clue, ok = r.Visit()
	assert.False(ok, "second visit finds nothing")
	assert.Equal("", clue)
}

func TestTruncate(t *testing.T) {
	r := NewRoom(strings.Repeat("á", 60), strings.Repeat("x", 120))
	assert.Equal(t, MaxNameLen, len([]rune(r.Name())))
	assert.Len(t, r.Clue(), MaxClueLen)
}

func TestDestroy(t *testing.T) {
	assert := assert.New(t)

	var empty *Room
	assert.Equal(0, empty.Destroy())

	root := defaultMap(t, true)
	left := root.Left()
	assert.Equal(9, root.Destroy())
	assert.True(root.IsLeaf())
	assert.True(left.IsLeaf())
}

func TestBuildPartial(t *testing.T) {
	assert := assert.New(t)

	bp := &Blueprint{
		Name: "Hall",
		Left: &Blueprint{
			Name: "",
			Left: &Blueprint{Name: "Unreachable"},
		},
		Right: &Blueprint{Name: "Kitchen", Clue: "crumbs"},
	}
	root, err := NewBuilder(zerolog.Nop()).Build(bp)
	assert.True(errors.Is(err, ErrEmptyName))
	if assert.NotNil(root) {
		assert.Nil(root.Left(), "failed wing is left out")
		assert.Equal("Kitchen", root.Right().Name())
		assert.Equal(2, root.Len())
	}
}

func TestBuildRootFails(t *testing.T) {
	root, err := NewBuilder(zerolog.Nop()).Build(&Blueprint{Left: &Blueprint{Name: "x"}})
	assert.Nil(t, root)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	var none *Blueprint
	assert.ErrorIs(none.Validate(), ErrNoBlueprint)

	deep := &Blueprint{Name: "1"}
	n := deep
	for i := 2; i <= MaxDepth+1; i++ {
		n.Right = &Blueprint{Name: "n"}
		n = n.Right
	}
	assert.ErrorIs(deep.Validate(), ErrTooDeep)

	root, err := NewBuilder(zerolog.Nop()).Build(deep)
	assert.Nil(root)
	assert.ErrorIs(err, ErrTooDeep)

	bp, err := DefaultBlueprint()
	assert.NoError(err)
	assert.NoError(bp.Validate())
}
