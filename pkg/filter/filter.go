// Package filter evaluates content against a user's keyword block-list and duration bounds.
package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/umputun/feedmix/pkg/domain"
)

// maxKeywordLen limits keyword length in runes
const maxKeywordLen = 100

// NormalizeKeyword trims, lower-cases and collapses inner whitespace of a keyword
func NormalizeKeyword(raw string) (string, error) {
	kw := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	if kw == "" {
		return "", &domain.ValidationError{Field: "keyword", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(kw) > maxKeywordLen {
		return "", &domain.ValidationError{Field: "keyword", Message: "is too long"}
	}
	return kw, nil
}

// IsBlocked reports whether any keyword matches item's title or description.
// Wildcard keywords match as substrings, others only as whole words. Matching is case-insensitive.
func IsBlocked(item domain.ContentItem, keywords []domain.FilterKeyword) bool {
	if len(keywords) == 0 {
		return false
	}
	fields := []string{strings.ToLower(item.Title), strings.ToLower(item.Description)}
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if k == "" {
			continue
		}
		for _, f := range fields {
			if kw.IsWildcard && strings.Contains(f, k) {
				return true
			}
			if !kw.IsWildcard && containsWord(f, k) {
				return true
			}
		}
	}
	return false
}

// WithinDuration reports whether item's duration is inside inclusive bounds, nil bound is unbounded.
// Items with unknown duration always pass.
func WithinDuration(item domain.ContentItem, minDur, maxDur *int64) bool {
	if item.Duration == nil {
		return true
	}
	d := *item.Duration
	if minDur != nil && d < *minDur {
		return false
	}
	if maxDur != nil && d > *maxDur {
		return false
	}
	return true
}

// Allowed combines both checks for a feed candidate. Always-safe sources skip keywords only.
func Allowed(c domain.Candidate, keywords []domain.FilterKeyword, prefs domain.UserPreferences) bool {
	if !WithinDuration(c.ContentItem, prefs.MinDuration, prefs.MaxDuration) {
		return false
	}
	return c.AlwaysSafe || !IsBlocked(c.ContentItem, keywords)
}

// containsWord finds word in s bounded by non-alphanumeric characters or string edges
func containsWord(s, word string) bool {
	for start := 0; start <= len(s)-len(word); {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(word)
		if boundaryBefore(s, pos) && boundaryAfter(s, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		start = pos + size
	}
	return false
}

func boundaryBefore(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return !isWordRune(r)
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
