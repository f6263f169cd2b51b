package report

import (
	"github.com/pixeldare/darekit/pkg/challenge"
	"github.com/pixeldare/darekit/pkg/constraint"
	"github.com/pixeldare/darekit/pkg/scene"
	"github.com/pixeldare/darekit/pkg/violations"
)

// Report bundles everything a renderer needs to describe one check run: the
// challenge brief, the rule summaries, and the violations found.
type Report struct {
	Challenge  challenge.Challenge
	Summary    []string
	Violations []string
}

// Build evaluates a scene snapshot against a challenge and assembles the
// report. Summary text and violation text stay independently sourced: the
// former comes from the display formatter, the latter from the evaluator's
// own messages.
func Build(ch challenge.Challenge, snap scene.Snapshot) Report {
	set := ch.ConstraintSet()
	return Report{
		Challenge:  ch,
		Summary:    constraint.Summaries(set),
		Violations: violations.Check(snap, set),
	}
}

// Clean reports whether the run produced no violations.
func (r Report) Clean() bool {
	return len(r.Violations) == 0
}
