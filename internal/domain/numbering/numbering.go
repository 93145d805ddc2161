// Package numbering derives sequential display numbers (COT-001, COT-002, ...)
// from a snapshot of the numbers already issued in a scope.
//
// This is a pure policy over the current snapshot; it keeps no counter state.
// Under concurrent writers it can hand out duplicates, so multi-writer
// backends must issue numbers through an atomic sequence at the storage
// boundary instead (see the DynamoDB sequencer).
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
)

// Prefix of every quote display number.
const Prefix = "COT-"

var reNumber = regexp.MustCompile(`COT-(\d+)`)

// Next returns the display number that follows the given existing set:
// COT-001 for an empty scope, otherwise max numeric suffix + 1, zero-padded to
// at least 3 digits. Strings that do not match COT-<digits> count as 0.
func Next(existing []string) string {
	max := 0
	for _, s := range existing {
		m := reNumber.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return Format(max + 1)
}

// Format renders a numeric sequence value as a display number, zero-padded to
// at least 3 digits. Widths grow naturally past 999.
func Format(seq int) string {
	return fmt.Sprintf("%s%03d", Prefix, seq)
}
