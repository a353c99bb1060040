package game

import (
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"detective_quest/clues"
	"detective_quest/suspects"
)

// RequiredEvidence is how many collected clues must point at the accused for
// the accusation to hold.
const RequiredEvidence = 2

type Outcome int

const (
	// OutcomeNoEvidence means no clue was collected, so nobody was accused.
	OutcomeNoEvidence Outcome = iota
	// OutcomeListed means the clues were only listed; accusations were off.
	OutcomeListed
	OutcomeSolved
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeListed:
		return "listed"
	case OutcomeSolved:
		return "solved"
	case OutcomeFailed:
		return "failed"
	}
	return "no evidence"
}

type Verdict struct {
	Accused string
	// Evidence holds the collected clues pointing at Accused, in order.
	Evidence []string
	Tally    uint64
	Outcome  Outcome
}

// Accuse counts the collected clues whose suspect is exactly accused. Clues
// without a suspect, or pointing at the neutral party, never count.
func Accuse(collected *clues.Tree, table *suspects.Table, accused string) Verdict {
	v := Verdict{Accused: accused}
	if collected.Empty() {
		v.Outcome = OutcomeNoEvidence
		return v
	}
	for clue := range collected.All() {
		suspect := table.Lookup(clue)
		if suspect == suspects.NoAssociation || suspect == suspects.Neutral {
			continue
		}
		if suspect == accused {
			v.Tally = std.SumAssumeNoOverflow(v.Tally, 1)
			v.Evidence = append(v.Evidence, clue)
		}
	}
	primitive.Assert(v.Tally == uint64(len(v.Evidence)))
	if v.Tally >= RequiredEvidence {
		v.Outcome = OutcomeSolved
	} else {
		v.Outcome = OutcomeFailed
	}
	return v
}

// Verdict lists the collected clues, asks for the accused and judges the
// accusation. With no clues there is nothing to judge and the player is not
// asked.
func (g *Game) Verdict() Verdict {
	g.blank()
	g.say("------------------------------------------------------------------")
	g.say("FINAL PHASE: EVIDENCE REVIEW")
	g.say("------------------------------------------------------------------")

	if g.clues.Empty() {
		g.say("No clues were collected. A well-founded accusation is impossible.")
		g.say("-> RESULT: the culprit escaped for lack of evidence.")
		return Verdict{Outcome: OutcomeNoEvidence}
	}

	g.say("Collected clues (alphabetical order):")
	for clue := range g.clues.All() {
		g.say("   -> %s", clue)
	}
	if g.table == nil {
		return Verdict{Outcome: OutcomeListed}
	}

	g.blank()
	g.say("Key suspects: %s.", strings.Join(g.table.Suspects(), ", "))
	g.prompt("Enter the name of the CULPRIT you accuse: ")
	accused, err := g.in.ReadSuspect()
	if err != nil {
		g.log.Warn().Err(err).Msg("could not read the accusation")
	}

	g.blank()
	g.say("Checking the evidence against %s...", accused)
	v := Accuse(g.clues, g.table, accused)
	for _, clue := range v.Evidence {
		g.say("   [EVIDENCE] Clue '%s' points to %s.", clue, accused)
	}

	g.blank()
	g.say("--- VERDICT ---")
	g.say("Total evidence against %s: %d", accused, v.Tally)
	if v.Outcome == OutcomeSolved {
		g.say("SUCCESS! Enough evidence (%d clues) supports your accusation against %s.", v.Tally, accused)
		g.say("-> RESULT: the culprit has been caught. Case closed!")
	} else {
		g.say("FAILURE! Only %d piece(s) of evidence found. You need at least %d.", v.Tally, RequiredEvidence)
		g.say("-> RESULT: the accusation does not hold. The real culprit escaped!")
	}
	g.log.Info().Str("accused", accused).Uint64("tally", v.Tally).Stringer("outcome", v.Outcome).Msg("verdict")
	return v
}
