package arxiv

// stopwords are the common English tokens excluded from the frequency
// tables. The set covers articles, pronouns, auxiliaries and frequent
// function words; abstracts are dominated by these otherwise.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "from": {}, "up": {}, "about": {},
	"into": {}, "through": {}, "during": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {},
	"can": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "what": {}, "which": {}, "who": {},
	"when": {}, "where": {}, "why": {}, "how": {},
	"all": {}, "each": {}, "every": {}, "both": {}, "few": {},
	"more": {}, "most": {}, "other": {}, "some": {},
	"such": {}, "as": {}, "also": {}, "very": {}, "too": {},
	"only": {}, "so": {}, "than": {}, "not": {},
}

// IsStopword reports whether a lower-cased token is a stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
