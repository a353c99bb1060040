package game

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		key      rune
		expected Command
	}{
		{'e', CommandLeft},
		{'E', CommandLeft},
		{'d', CommandRight},
		{'D', CommandRight},
		{'s', CommandExit},
		{'S', CommandExit},
		{'x', CommandInvalid},
		{'1', CommandInvalid},
		{'é', CommandInvalid},
	}

	for _, test := range tests {
		assert.Equal(test.expected, ParseCommand(test.key), "ParseCommand(%q)", test.key)
	}
}

func TestConsoleReadCommand(t *testing.T) {
	assert := assert.New(t)

	c := NewConsole(strings.NewReader("e\n  Dright\n\n\nxyz\ns"))
	var got []Command
	for {
		cmd, err := c.ReadCommand()
		if err != nil {
			assert.ErrorIs(err, io.EOF)
			break
		}
		got = append(got, cmd)
	}
	// the rest of each line is discarded and blank lines are skipped
	assert.Equal([]Command{CommandLeft, CommandRight, CommandInvalid, CommandExit}, got)
}

func TestConsoleReadSuspect(t *testing.T) {
	assert := assert.New(t)

	c := NewConsole(strings.NewReader("  Butler did it\nHeir"))
	name, err := c.ReadSuspect()
	assert.NoError(err)
	assert.Equal("Butler", name)

	name, err = c.ReadSuspect()
	assert.NoError(err, "a word ended by EOF is still read")
	assert.Equal("Heir", name)

	_, err = c.ReadSuspect()
	assert.ErrorIs(err, io.EOF)
}

func TestConsoleReadSuspectTruncates(t *testing.T) {
	assert := assert.New(t)

	long := strings.Repeat("a", 60)
	c := NewConsole(strings.NewReader(long + " extra\ns\n"))
	name, err := c.ReadSuspect()
	assert.NoError(err)
	assert.Equal(strings.Repeat("a", MaxSuspectLen), name)

	cmd, err := c.ReadCommand()
	assert.NoError(err)
	assert.Equal(CommandExit, cmd, "rest of the accusation line was discarded")
}
