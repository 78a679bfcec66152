package analysis

import "math"

// Each sub-score starts from a base and walks an ordered rule list. Rules
// are additive and independently auditable; tier rules carry mutually
// exclusive predicates so only one tier fires.

// scoreRule adjusts a running sub-score when its predicate holds.
type scoreRule struct {
	when   func(m *answerMetrics) bool
	points func(m *answerMetrics) float64
}

// fixed wraps a constant adjustment.
func fixed(n float64) func(m *answerMetrics) float64 {
	return func(*answerMetrics) float64 { return n }
}

func applyRules(base float64, rules []scoreRule, m *answerMetrics) int {
	score := base
	for _, r := range rules {
		if r.when(m) {
			score += r.points(m)
		}
	}
	return clampScore(score)
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// ---------------- Relevance (base 0) ----------------

var relevanceRules = []scoreRule{
	// Keyword overlap carries up to 60 points.
	{
		when: func(m *answerMetrics) bool { return m.questionKeywordCount > 0 },
		points: func(m *answerMetrics) float64 {
			return 60 * float64(m.matchedCount) / float64(m.questionKeywordCount)
		},
	},
	// Length tiers (highest applicable tier only)
	{when: func(m *answerMetrics) bool { return m.wordCount > 30 }, points: fixed(15)},
	{when: func(m *answerMetrics) bool { return m.wordCount > 15 && m.wordCount <= 30 }, points: fixed(10)},
	{when: func(m *answerMetrics) bool { return m.wordCount > 5 && m.wordCount <= 15 }, points: fixed(5)},
	// Concrete stories and structured delivery
	{when: func(m *answerMetrics) bool { return containsAny(m.loweredAnswer, anecdoteMarkers) }, points: fixed(10)},
	{when: func(m *answerMetrics) bool { return containsAny(m.loweredAnswer, sequenceMarkers) }, points: fixed(10)},
	// Very short answers cannot be relevant
	{when: func(m *answerMetrics) bool { return m.wordCount < 10 }, points: fixed(-20)},
}

// scoreRelevance is zero when the question yields no keywords at all.
func scoreRelevance(m *answerMetrics) int {
	if m.questionKeywordCount == 0 {
		return 0
	}
	return applyRules(0, relevanceRules, m)
}

// ---------------- Clarity (base 100) ----------------

var clarityRules = []scoreRule{
	// Filler ratio tiers
	{when: func(m *answerMetrics) bool { return m.fillerRatio > 0.15 }, points: fixed(-30)},
	{when: func(m *answerMetrics) bool { return m.fillerRatio > 0.10 && m.fillerRatio <= 0.15 }, points: fixed(-20)},
	{when: func(m *answerMetrics) bool { return m.fillerRatio > 0.05 && m.fillerRatio <= 0.10 }, points: fixed(-10)},
	// Pace: too fast or too slow hurts, the conversational band helps
	{
		when: func(m *answerMetrics) bool {
			return m.speakingRate > 180 || (m.speakingRate > 0 && m.speakingRate < 100)
		},
		points: fixed(-15),
	},
	{when: func(m *answerMetrics) bool { return m.speakingRate >= 120 && m.speakingRate <= 160 }, points: fixed(10)},
	// Multi-sentence answers read as organized
	{when: func(m *answerMetrics) bool { return m.sentenceCount > 2 }, points: fixed(10)},
}

func scoreClarity(m *answerMetrics) int {
	return applyRules(100, clarityRules, m)
}

// ---------------- Completeness (base 50) ----------------

// wordTargets returns the minimum and ideal answer length for a question
// type. Introductions warrant longer answers.
func wordTargets(questionType string) (minWords, idealWords int) {
	if questionType == "introduction" {
		return 40, 80
	}
	return 30, 60
}

var completenessRules = []scoreRule{
	// Length tiers against the type-dependent target (highest tier only)
	{
		when: func(m *answerMetrics) bool { return m.wordCount >= m.idealWords },
		points: fixed(40),
	},
	{
		when: func(m *answerMetrics) bool { return m.wordCount >= m.minWords && m.wordCount < m.idealWords },
		points: fixed(30),
	},
	{
		when: func(m *answerMetrics) bool {
			return float64(m.wordCount) >= 0.7*float64(m.minWords) && m.wordCount < m.minWords
		},
		points: fixed(20),
	},
	{
		when: func(m *answerMetrics) bool { return float64(m.wordCount) < 0.7*float64(m.minWords) },
		points: fixed(10),
	},
	// Examples and depth
	{when: func(m *answerMetrics) bool { return containsAny(m.loweredAnswer, exampleMarkers) }, points: fixed(10)},
	{when: func(m *answerMetrics) bool { return containsAny(m.loweredAnswer, depthMarkers) }, points: fixed(10)},
}

func scoreCompleteness(m *answerMetrics) int {
	return applyRules(50, completenessRules, m)
}

// ---------------- Professionalism (base 100) ----------------

var professionalismRules = []scoreRule{
	{when: func(m *answerMetrics) bool { return m.hasCasualWord }, points: fixed(-15)},
	{when: func(m *answerMetrics) bool { return m.fillerRatio > 0.10 }, points: fixed(-20)},
	// Professional vocabulary credits 5 points a hit, capped at 20
	{
		when: func(m *answerMetrics) bool { return m.professionalHits > 0 },
		points: func(m *answerMetrics) float64 {
			return math.Min(20, 5*float64(m.professionalHits))
		},
	},
}

func scoreProfessionalism(m *answerMetrics) int {
	return applyRules(100, professionalismRules, m)
}
