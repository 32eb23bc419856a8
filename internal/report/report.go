// Package report renders rolled dice as the text shown to the user.
package report

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/cory-johannsen/diceroller/internal/dice"
	"github.com/cory-johannsen/diceroller/internal/term"
)

// Separator is printed above the total line.
const Separator = "------------------------------------------------------------------"

// Options controls presentation.
type Options struct {
	// Color enables ANSI styling of headings, constant, and total.
	Color bool
}

// Summary holds the arithmetic behind a report.
//
// Invariant: ShowTotal == (Items > 1).
type Summary struct {
	Items     int      // dice printed plus one when a constant is present
	Total     *big.Int // exact sum of every die value plus the constant
	ShowTotal bool
}

// Summarize counts the items of o and sums them.
//
// Postcondition: Total == sum of all values + constant (if any).
func Summarize(o dice.Outcome) Summary {
	s := Summary{Total: new(big.Int)}
	for _, g := range o.Groups {
		s.Items += len(g.Values)
		s.Total.Add(s.Total, g.Sum())
	}
	if o.Constant != nil {
		s.Items++
		s.Total.Add(s.Total, big.NewInt(int64(*o.Constant)))
	}
	s.ShowTotal = s.Items > 1
	return s
}

// Render returns the report for o.
//
// Each group prints a header and one "i. value/sides" line per die, followed
// by the constant when present. The total is printed only when more than one
// item was summed.
func Render(o dice.Outcome, opts Options) string {
	style := term.Styler{Enabled: opts.Color}
	var b strings.Builder

	for _, g := range o.Groups {
		b.WriteString(style.Heading(fmt.Sprintf("d%d roll:", g.Sides)))
		b.WriteString("\n")
		for i, v := range g.Values {
			fmt.Fprintf(&b, "  %d. %d/%d\n", i+1, v, g.Sides)
		}
		b.WriteString("\n")
	}

	if o.Constant != nil {
		b.WriteString(style.Constant(fmt.Sprintf("And the constant factor being: %d", *o.Constant)))
		b.WriteString("\n")
	}

	if s := Summarize(o); s.ShowTotal {
		b.WriteString(Separator)
		b.WriteString("\n")
		b.WriteString(style.Total("TOTAL SUM: " + s.Total.String()))
		b.WriteString("\n\n\n")
	}

	return b.String()
}

// Write writes the report for o to w.
//
// Postcondition: Returns nil or the wrapped write error.
func Write(w io.Writer, o dice.Outcome, opts Options) error {
	if _, err := io.WriteString(w, Render(o, opts)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteDropped lists the terms the parser ignored, one per line.
// Nothing is written when dropped is empty.
func WriteDropped(w io.Writer, dropped []dice.DroppedTerm, opts Options) error {
	if len(dropped) == 0 {
		return nil
	}
	style := term.Styler{Enabled: opts.Color}
	var b strings.Builder
	for _, d := range dropped {
		b.WriteString(style.Warning(fmt.Sprintf("Ignored %q: %s", d.Term, d.Reason)))
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing ignored terms: %w", err)
	}
	return nil
}
