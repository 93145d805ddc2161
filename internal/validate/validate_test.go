package validate

import "testing"

func TestRequired(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"hello", true},
		{"  hello  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, tc := range cases {
		if got := Required(tc.in); got != tc.want {
			t.Fatalf("Required(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ana@example.com", true},
		{"demo@laminasycortes.com", true},
		{"a@b.co", true},
		{"user+tag@sub.domain.org", true},
		{"", false},
		{"   ", false},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"missing@tld", false},
		{"double..dot@example.com", false},
		{"@example.com", false},
		{"ana@.com", false},
	}
	for _, tc := range cases {
		if got := Email(tc.in); got != tc.want {
			t.Fatalf("Email(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"secret123", true},
		{"12345678", true},
		{"contraseña", true},
		{"short", false},
		{"1234567", false},
		{"        ", false},
		{"  1234567  ", false},
	}
	for _, tc := range cases {
		if got := Password(tc.in); got != tc.want {
			t.Fatalf("Password(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Ana", true},
		{"Li", true},
		{"ñu", true},
		{"A", false},
		{"", false},
		{" A ", false},
	}
	for _, tc := range cases {
		if got := Name(tc.in); got != tc.want {
			t.Fatalf("Name(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
