package analysis

import (
	"regexp"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]+`)

// tokenize lowercases text, replaces everything that is neither a word
// character nor whitespace with a space, and splits on whitespace.
func tokenize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// countFillerWords sums word-boundary occurrences of every filler phrase in
// the raw lowercased answer.
func countFillerWords(lowered string) int {
	count := 0
	for _, p := range fillerPatterns {
		count += len(p.FindAllStringIndex(lowered, -1))
	}
	return count
}

// hasCasualLanguage reports whether any casual word appears as a whole word.
func hasCasualLanguage(lowered string) bool {
	for _, p := range casualPatterns {
		if p.MatchString(lowered) {
			return true
		}
	}
	return false
}

// countSentences splits on sentence terminators and counts non-blank parts.
func countSentences(text string) int {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// containsAny reports whether any phrase occurs as a substring.
func containsAny(lowered string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// extractKeywords filters tokens through the stop-word list, drops short
// tokens, and deduplicates. For technical questions, technology terms move
// to the front, preserving relative order within each group.
func extractKeywords(text, questionType string) []string {
	var technical, rest []string
	for _, token := range tokenize(text) {
		if len(token) <= 3 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, tech := technologyVocabulary[token]; tech && questionType == "technical" {
			technical = append(technical, token)
		} else {
			rest = append(rest, token)
		}
	}
	return dedupe(append(technical, rest...))
}

// matchKeywords returns question keywords echoed by the answer. Two words
// match exactly, by containment in either direction, or when both are at
// least 4 characters long and share a prefix covering 70% of the shorter
// word. Technical questions additionally credit technology vocabulary used
// in the answer even when the question never mentions it.
func matchKeywords(questionKeywords, answerKeywords []string, questionType string) []string {
	var matched []string
	for _, q := range questionKeywords {
		for _, a := range answerKeywords {
			if keywordsMatch(q, a) {
				matched = append(matched, q)
				break
			}
		}
	}
	if questionType == "technical" {
		for _, a := range answerKeywords {
			if _, tech := technologyVocabulary[a]; tech {
				matched = append(matched, a)
			}
		}
	}
	return dedupe(matched)
}

func keywordsMatch(q, a string) bool {
	if q == a {
		return true
	}
	if strings.Contains(q, a) || strings.Contains(a, q) {
		return true
	}
	return sharesPrefix(q, a)
}

// sharesPrefix applies the similarity heuristic: both words at least 4
// characters, identical prefix of floor(0.7 * min length) characters.
func sharesPrefix(q, a string) bool {
	if len(q) < 4 || len(a) < 4 {
		return false
	}
	shorter := len(q)
	if len(a) < shorter {
		shorter = len(a)
	}
	n := int(0.7 * float64(shorter))
	return q[:n] == a[:n]
}

// countProfessionalHits counts tokens starting with any professional
// vocabulary entry, so plural and derived forms still score.
func countProfessionalHits(tokens []string) int {
	hits := 0
	for _, token := range tokens {
		for _, vocab := range professionalVocabulary {
			if strings.HasPrefix(token, vocab) {
				hits++
				break
			}
		}
	}
	return hits
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
