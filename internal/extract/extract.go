package extract

import (
	"regexp"
	"strings"
)

// Patterns are case-insensitive and, for block removal, span newlines.
// The attribute patterns intentionally match href/src anywhere in the
// markup, not just inside anchor and img tags; the wire contract preserves
// document order and duplicates.
var (
	scriptPattern     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	hrefPattern       = regexp.MustCompile(`(?i)href=['"]?([^'" >]+)`)
	srcPattern        = regexp.MustCompile(`(?i)src=['"]?([^'" >]+)`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Extract returns the plain text of markup together with the href and src
// attribute values found in it.
//
// Order of operations matters and is part of the contract:
//  1. script and style blocks are removed with their content
//  2. links and images are collected from the remaining markup,
//     before tags are stripped
//  3. remaining tags are replaced by a single space, whitespace runs
//     are collapsed, and the result is trimmed
func Extract(markup string) (text string, links, images []string) {
	markup = scriptPattern.ReplaceAllString(markup, "")
	markup = stylePattern.ReplaceAllString(markup, "")

	links = attrValues(hrefPattern, markup)
	images = attrValues(srcPattern, markup)

	text = tagPattern.ReplaceAllString(markup, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return text, links, images
}

// attrValues returns the first capture group of every match in order,
// duplicates preserved.
func attrValues(pattern *regexp.Regexp, markup string) []string {
	matches := pattern.FindAllStringSubmatch(markup, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}
