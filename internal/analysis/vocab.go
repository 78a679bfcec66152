package analysis

import "regexp"

// Fixed word lists behind the scoring heuristics. Changing any entry changes
// scoring behavior, so treat them as frozen alongside the rule thresholds.

// fillerWords are verbal disfluencies counted against clarity and
// professionalism. Multi-word phrases are matched literally.
var fillerWords = []string{
	"um", "uh", "like", "you know", "sort of", "kind of", "basically",
	"actually", "literally", "just", "really", "very", "so", "well",
	"i mean", "you see",
}

// casualWords drag professionalism down when used as whole words.
var casualWords = []string{
	"gonna", "wanna", "gotta", "yeah", "nah", "stuff", "things",
}

// professionalVocabulary is credited by word prefix, so "achievements"
// counts for "achievement".
var professionalVocabulary = []string{
	"experience", "responsibility", "achievement", "challenge", "solution",
	"result", "impact", "collaboration", "leadership",
}

// technologyVocabulary front-loads keyword extraction for technical
// questions and credits technical terms used in the answer.
var technologyVocabulary = map[string]struct{}{
	"algorithm":     {},
	"database":      {},
	"api":           {},
	"framework":     {},
	"architecture":  {},
	"testing":       {},
	"deployment":    {},
	"optimization":  {},
	"scalability":   {},
	"security":      {},
	"performance":   {},
	"debugging":     {},
	"refactoring":   {},
	"documentation": {},
	"agile":         {},
	"scrum":         {},
	"git":           {},
	"ci/cd":         {},
	"microservices": {},
	"cloud":         {},
}

// stopWords are dropped during keyword extraction, together with any token
// of length <= 3.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "about": {}, "into": {}, "through": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "can": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "my": {}, "your": {}, "their": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "when": {}, "where": {},
	"why": {}, "how": {}, "there": {}, "here": {}, "then": {},
}

// Phrase markers looked up as substrings of the lowercased answer.
var (
	// anecdoteMarkers signal a concrete story and boost relevance.
	anecdoteMarkers = []string{"example", "instance", "time when", "situation where"}

	// sequenceMarkers signal structured delivery and boost relevance.
	sequenceMarkers = []string{"first", "second", "third", "finally", "lastly"}

	// exampleMarkers boost completeness.
	exampleMarkers = []string{"for example", "such as", "like when", "instance"}

	// depthMarkers boost completeness.
	depthMarkers = []string{"specifically", "particularly", "detail", "process", "method", "approach"}
)

// Word-boundary patterns, compiled once. Boundary anchoring keeps "liked"
// from counting as the filler "like".
var (
	fillerPatterns = buildWordPatterns(fillerWords)
	casualPatterns = buildWordPatterns(casualWords)
)

func buildWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return patterns
}
