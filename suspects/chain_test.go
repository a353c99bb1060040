package suspects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainInsertOnly(t *testing.T) {
	assert := assert.New(t)

	var l *entry
	_, ok := l.find("a")
	assert.False(ok)
	assert.Equal(0, l.len())

	l = l.insert("a", "x")
	s, ok := l.find("a")
	assert.True(ok)
	assert.Equal("x", s)
	_, ok = l.find("b")
	assert.False(ok)

	l = l.insert("b", "y")
	l = l.insert("a", "z")

	s, _ = l.find("a")
	assert.Equal("z", s, "re-inserted key is found first")
	assert.Equal(3, l.len())
}

func TestChainEachOrder(t *testing.T) {
	var l *entry
	l = l.insert("1", "a")
	l = l.insert("2", "b")
	l = l.insert("3", "c")

	var clues []string
	l.each(func(clue string, _ string) {
		clues = append(clues, clue)
	})
	assert.Equal(t, []string{"3", "2", "1"}, clues, "insert prepends")
}
