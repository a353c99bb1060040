package game

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command is one step of the exploration menu.
type Command int

const (
	CommandInvalid Command = iota
	CommandLeft
	CommandRight
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandExit:
		return "exit"
	}
	return "invalid"
}

// ParseCommand maps a menu key to its command: e goes left, d goes right and
// s leaves the mansion, in either case.
func ParseCommand(key rune) Command {
	switch unicode.ToLower(key) {
	case 'e':
		return CommandLeft
	case 'd':
		return CommandRight
	case 's':
		return CommandExit
	}
	return CommandInvalid
}

// MaxSuspectLen bounds the accused name; longer input is cut.
const MaxSuspectLen = 49

// Input is where the game gets the player's decisions from. Both methods
// return io.EOF once no more input will arrive.
type Input interface {
	ReadCommand() (Command, error)
	ReadSuspect() (string, error)
}

// Console reads player input from a line-oriented text stream.
type Console struct {
	r *bufio.Reader
}

func NewConsole(r io.Reader) *Console {
	return &Console{r: bufio.NewReader(r)}
}

func (c *Console) skipSpace() error {
	for {
		ch, _, err := c.r.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(ch) {
			return c.r.UnreadRune()
		}
	}
}

// discardLine drops everything up to and including the next newline.
func (c *Console) discardLine() {
	_, _ = c.r.ReadString('\n')
}

// ReadCommand reads the first non-blank character and throws away the rest of
// its line.
func (c *Console) ReadCommand() (Command, error) {
	if err := c.skipSpace(); err != nil {
		return CommandInvalid, err
	}
	ch, _, err := c.r.ReadRune()
	if err != nil {
		return CommandInvalid, err
	}
	c.discardLine()
	return ParseCommand(ch), nil
}

// ReadSuspect reads one whitespace-delimited word, keeping at most
// MaxSuspectLen bytes of it, and throws away the rest of its line.
func (c *Console) ReadSuspect() (string, error) {
	if err := c.skipSpace(); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		ch, _, err := c.r.ReadRune()
		if err != nil {
			// a word cut short by EOF still counts
			return b.String(), nil
		}
		if unicode.IsSpace(ch) {
			if ch != '\n' {
				c.discardLine()
			}
			return b.String(), nil
		}
		if b.Len()+utf8.RuneLen(ch) <= MaxSuspectLen {
			b.WriteRune(ch)
		}
	}
}
