package textutil

import (
	"regexp"
	"strings"
)

// wordPattern matches a maximal run of ASCII letters and digits.
// Case is preserved; lower-casing is the caller's decision.
var wordPattern = regexp.MustCompile(`[0-9A-Za-z]+`)

// hyphenWordPattern additionally keeps internal hyphens, so "state-of-the-art"
// is a single token. Used for scientific abstracts where hyphenated terms
// carry meaning.
var hyphenWordPattern = regexp.MustCompile(`[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*`)

// sentencePattern splits on the sentence-terminating punctuation characters.
var sentencePattern = regexp.MustCompile(`[.!?]`)

// paragraphPattern splits on one or more newlines.
var paragraphPattern = regexp.MustCompile(`\n+`)

// Words returns the word tokens of text in order, case preserved.
// It returns an empty slice, never nil, so callers can range and
// serialize the result without nil checks.
func Words(text string) []string {
	tokens := wordPattern.FindAllString(text, -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// LowerWords returns the word tokens of text lower-cased.
func LowerWords(text string) []string {
	return Words(strings.ToLower(text))
}

// HyphenWords returns word tokens keeping internal hyphens, case preserved.
func HyphenWords(text string) []string {
	tokens := hyphenWordPattern.FindAllString(text, -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Sentences splits text on '.', '!' and '?' and returns the non-blank
// fragments. Fragments are not trimmed; blankness means empty or
// whitespace-only.
func Sentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Paragraphs splits text on runs of newlines and returns the non-blank
// fragments.
func Paragraphs(text string) []string {
	parts := paragraphPattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// NGrams returns the contiguous n-grams of words as space-joined strings.
// It returns an empty slice when words has fewer than n elements.
func NGrams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return []string{}
	}
	grams := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, strings.Join(words[i:i+n], " "))
	}
	return grams
}

// Jaccard returns the Jaccard similarity of the token sets of a and b:
// |intersection| / |union|. It is 0.0 when the union is empty, so two
// empty documents compare as dissimilar rather than producing NaN.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
