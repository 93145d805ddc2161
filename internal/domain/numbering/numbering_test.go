package numbering

import "testing"

func TestNext(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty scope", nil, "COT-001"},
		{"single", []string{"COT-001"}, "COT-002"},
		{"max wins regardless of order", []string{"COT-003", "COT-001", "COT-002"}, "COT-004"},
		{"gaps are not refilled", []string{"COT-001", "COT-005"}, "COT-006"},
		{"non-matching strings ignored", []string{"FAC-010", "garbage", ""}, "COT-001"},
		{"mixed", []string{"garbage", "COT-007"}, "COT-008"},
		{"width grows past 999", []string{"COT-999"}, "COT-1000"},
		{"unpadded suffix still counts", []string{"COT-12"}, "COT-013"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Next(tc.existing); got != tc.want {
				t.Fatalf("Next(%v) = %s, want %s", tc.existing, got, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1); got != "COT-001" {
		t.Fatalf("Format(1) = %s", got)
	}
	if got := Format(42); got != "COT-042" {
		t.Fatalf("Format(42) = %s", got)
	}
	if got := Format(1234); got != "COT-1234" {
		t.Fatalf("Format(1234) = %s", got)
	}
}
