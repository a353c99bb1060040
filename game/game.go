// Package game runs a Detective Quest session: the player walks the mansion,
// picks up clues and finally accuses a suspect.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"detective_quest/clues"
	"detective_quest/mansion"
	"detective_quest/suspects"
)

// maxReadErrors consecutive failed reads end the exploration as if the
// player had left.
const maxReadErrors = 3

type Game struct {
	rooms   *mansion.Room
	table   *suspects.Table
	clues   *clues.Tree
	visited mapset.Set[*mansion.Room]

	in  Input
	out io.Writer
	log zerolog.Logger
}

// New prepares a session over the map rooted at rooms. A nil table turns the
// verdict into a plain listing of the clues found, with no accusation.
func New(rooms *mansion.Room, table *suspects.Table, in Input, out io.Writer, log zerolog.Logger) *Game {
	return &Game{
		rooms:   rooms,
		table:   table,
		clues:   clues.NewTree(),
		visited: mapset.New[*mansion.Room](),
		in:      in,
		out:     out,
		log:     log,
	}
}

// say prints one line of narrative; the text is looked up in the active locale.
func (g *Game) say(format string, args ...any) {
	fmt.Fprintln(g.out, gotext.Get(format, args...))
}

func (g *Game) blank() {
	fmt.Fprintln(g.out)
}

func (g *Game) prompt(format string, args ...any) {
	fmt.Fprint(g.out, gotext.Get(format, args...))
}

// Clues returns the clues collected so far.
func (g *Game) Clues() *clues.Tree {
	return g.clues
}

// Visited counts the distinct rooms the player has entered.
func (g *Game) Visited() int {
	return g.visited.Size()
}

// Run plays a full session and releases the map and the clues afterwards.
func (g *Game) Run() Verdict {
	if g.rooms != nil {
		g.say("The map is ready! Starting the exploration in the %s...", g.rooms.Name())
	}
	g.Explore()
	v := g.Verdict()
	g.say("You visited %d rooms and collected %d clues.", g.Visited(), g.clues.Len())
	g.Close()
	return v
}

// Collect takes the clue of room, if it still has one, into the collected
// clues. It reports whether a new clue was recorded.
func (g *Game) Collect(room *mansion.Room) bool {
	g.visited.Put(room)
	clue, ok := room.Visit()
	if !ok {
		g.say("No new clue in this room.")
		return false
	}
	g.say("CLUE FOUND: %s", clue)
	var inserted bool
	g.clues, inserted = g.clues.Insert(clue)
	if !inserted {
		g.log.Warn().Str("clue", clue).Str("room", room.Name()).Msg("clue already present")
		return false
	}
	g.say("   (Clue recorded: '%s')", clue)
	return true
}

// Explore walks the map from the entrance until the player leaves or reaches
// a room with no exits.
func (g *Game) Explore() {
	if g.rooms == nil {
		g.log.Error().Msg("no map to explore")
		g.say("The mansion could not be opened. Skipping the exploration.")
		return
	}
	current := g.rooms
	for {
		g.blank()
		g.say("You are in: %s", current.Name())
		g.Collect(current)
		if current.IsLeaf() {
			g.say("Dead end: this room has no more exits.")
			return
		}
		next, ok := g.choose(current)
		if !ok {
			return
		}
		current = next
	}
}

// choose prompts until the player picks an open door or leaves.
func (g *Game) choose(room *mansion.Room) (*mansion.Room, bool) {
	failures := 0
	for {
		g.menu(room)
		cmd, err := g.in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.log.Info().Msg("input closed, leaving the mansion")
				return nil, false
			}
			failures++
			g.log.Warn().Err(err).Int("failures", failures).Msg("could not read command")
			if failures >= maxReadErrors {
				return nil, false
			}
			cmd = CommandInvalid
		} else {
			failures = 0
		}

		switch {
		case cmd == CommandExit:
			return nil, false
		case cmd == CommandLeft && room.Left() != nil:
			return room.Left(), true
		case cmd == CommandRight && room.Right() != nil:
			return room.Right(), true
		}
		g.log.Debug().Stringer("command", cmd).Str("room", room.Name()).Msg("rejected move")
		g.say("Invalid choice or blocked path. Try again.")
	}
}

func (g *Game) menu(room *mansion.Room) {
	g.blank()
	g.say("Choose the next path:")
	if l := room.Left(); l != nil {
		g.say(" [e] Left: %s", l.Name())
	}
	if r := room.Right(); r != nil {
		g.say(" [d] Right: %s", r.Name())
	}
	g.say(" [s] Leave the mansion and review the clues.")
	g.prompt("Your choice: ")
}

// Close releases the map and then the collected clues.
func (g *Game) Close() {
	rooms := g.rooms.Destroy()
	found := g.clues.Destroy()
	g.rooms = nil
	g.clues = clues.NewTree()
	g.log.Debug().Int("rooms", rooms).Int("clues", found).Msg("released")
	g.blank()
	g.say("Memory released. End of program.")
}
