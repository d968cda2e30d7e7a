// Package identity reconciles the two breed name spaces this system
// straddles: the canonical names of the trait table and the folder names of
// the external photo repository. Both sides are pushed through the same
// normalization, matched exactly, and the leftovers are bridged by a
// curated override table. The result is a read-only map built once per
// session; a breed that never resolves simply has no asset, it is never an
// error.
package identity

import (
	"strings"
	"unicode"
)

// disambiguator is appended to every normalized name. Folder names in the
// external repository all end in "dog" semantically, so forcing it on both
// sides removes a whole class of near-misses.
const disambiguator = "dog"

// Normalize canonicalizes a breed or folder name for matching:
//
//  1. lower-case
//  2. drop every rune except letters, digits, underscore, whitespace and
//     parentheses
//  3. move parenthesized qualifiers to the front, dropping the parentheses
//     ("Pointers (German Shorthaired)" -> "german shorthaired pointers")
//  4. collapse whitespace
//  5. strip a single trailing "s" from the last word when that word is
//     longer than 3 characters ("terriers" -> "terrier", "corgis" stays
//     safe, short tokens like "les" are left alone)
//  6. append "dog" unless it is already the last word
//
// Normalize is deterministic and idempotent: applying it twice yields the
// same string as applying it once.
func Normalize(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '(', r == ')':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	qualifiers, rest := splitParenthetical(b.String())
	words := strings.Fields(strings.TrimSpace(qualifiers + " " + rest))

	if len(words) > 0 {
		last := words[len(words)-1]
		if len(last) > 3 && strings.HasSuffix(last, "s") {
			words[len(words)-1] = strings.TrimSuffix(last, "s")
		}
	}
	if len(words) == 0 || words[len(words)-1] != disambiguator {
		words = append(words, disambiguator)
	}
	return strings.Join(words, " ")
}

// splitParenthetical extracts the contents of every parenthesized group and
// returns them (space-joined, in order) alongside the name with the groups
// removed. A name that is nothing but a parenthetical still yields a
// non-empty result.
func splitParenthetical(name string) (qualifiers, rest string) {
	var quals []string
	var out strings.Builder
	depth := 0
	var current strings.Builder
	for _, r := range name {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
				if depth == 0 {
					quals = append(quals, current.String())
					current.Reset()
				}
			}
		default:
			if depth > 0 {
				current.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
		}
	}
	// Unbalanced open paren: keep whatever was captured.
	if current.Len() > 0 {
		quals = append(quals, current.String())
	}
	return strings.Join(quals, " "), out.String()
}
