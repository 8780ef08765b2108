// Package patcher edits already generated TypeScript files in place: it injects
// repository dependencies into a use case constructor and into the index wiring.
// Every patch is idempotent and leaves text untouched when its anchor is missing.
package patcher

import (
	"fmt"
	"strings"
)

type Outcome int

const (
	Applied Outcome = iota
	AlreadyPresent
	AnchorNotFound
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadyPresent:
		return "already present"
	case AnchorNotFound:
		return "anchor not found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Piece is one edit of a patch together with its outcome.
type Piece struct {
	Name    string
	Outcome Outcome
}

// Report lists the pieces of a patch in the order they were attempted.
type Report struct {
	Pieces []Piece
}

// Add records the outcome of one piece.
func (r *Report) Add(name string, o Outcome) {
	r.Pieces = append(r.Pieces, Piece{Name: name, Outcome: o})
}

// Changed reports whether at least one piece was applied.
func (r Report) Changed() bool {
	for _, p := range r.Pieces {
		if p.Outcome == Applied {
			return true
		}
	}
	return false
}

// Missed returns the pieces whose anchor could not be found.
func (r Report) Missed() []Piece {
	var missed []Piece
	for _, p := range r.Pieces {
		if p.Outcome == AnchorNotFound {
			missed = append(missed, p)
		}
	}
	return missed
}

// Outcome returns the outcome recorded for name, if any.
func (r Report) Outcome(name string) (Outcome, bool) {
	for _, p := range r.Pieces {
		if p.Name == name {
			return p.Outcome, true
		}
	}
	return 0, false
}

func (r Report) String() string {
	parts := make([]string, 0, len(r.Pieces))
	for _, p := range r.Pieces {
		parts = append(parts, p.Name+": "+p.Outcome.String())
	}
	return strings.Join(parts, ", ")
}

// Merge appends the pieces of other.
func (r *Report) Merge(other Report) {
	r.Pieces = append(r.Pieces, other.Pieces...)
}
