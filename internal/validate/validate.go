package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Deliberately permissive: one run of non-space/non-@ characters, a single @,
// a domain with at least one dot. Tighter RFC 5322 parsing rejects addresses
// real users type every day.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required reports whether s is non-empty after trimming whitespace.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s looks like a usable email address. Consecutive
// literal dots are rejected even though the pattern would let them through.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return reEmail.MatchString(s)
}

// Password requires at least 8 characters after trimming.
func Password(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 8
}

// Name requires at least 2 characters after trimming.
func Name(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 2
}
