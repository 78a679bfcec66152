package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TechnicalAnswer(t *testing.T) {
	question := "Describe a challenging project and how you used algorithms to solve it"
	answer := "um I worked on a database project where I optimized an algorithm, for example we had performance issues"

	result := Analyze(question, answer, 15, "technical")

	assert.Equal(t, 18, result.WordCount)
	assert.Equal(t, 1, result.FillerWordCount)
	// 18 words over 15 seconds
	assert.Equal(t, 72, result.SpeakingRateWpm)

	assert.Contains(t, result.KeywordMatches, "project")
	assert.Contains(t, result.KeywordMatches, "database")
	assert.Contains(t, result.KeywordMatches, "algorithm")
}

func TestAnalyze_ExampleMarkerBoostsRelevance(t *testing.T) {
	question := "Describe a challenging project and how you used algorithms to solve it"
	withExample := "um I worked on a database project where I optimized an algorithm, for example we had performance issues"
	withoutExample := "um I worked on a database project where I optimized an algorithm, and we had big performance issues"

	boosted := Analyze(question, withExample, 15, "technical")
	plain := Analyze(question, withoutExample, 15, "technical")

	assert.Greater(t, boosted.Relevance, plain.Relevance)
}

func TestAnalyze_EmptyAnswer(t *testing.T) {
	result := Analyze("Tell me about a time you led a team", "", 10, "behavioral")

	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 0, result.SpeakingRateWpm)
	assert.Equal(t, 0, result.FillerWordCount)
	assert.Empty(t, result.KeywordMatches)
	assert.LessOrEqual(t, result.Relevance, 30)
	assert.Equal(t, []string{"Attempted to answer the question"}, result.Strengths)
	assert.NotEmpty(t, result.Improvements)
	assert.NotEmpty(t, result.DetailedFeedback)
}

func TestAnalyze_StrongBehavioralAnswer(t *testing.T) {
	question := "Tell me about a time when you faced a difficult challenge with your team"
	// 60 words, four sentences, no fillers, delivered at 144 wpm.
	answer := "In my previous role our team faced a difficult challenge when a major client deadline moved up by two weeks. " +
		"First I broke the work into smaller pieces and reassigned tasks based on experience. " +
		"For example I paired junior developers with senior leads to speed up delivery. " +
		"Finally we shipped on time and the result exceeded all of our expectations."

	result := Analyze(question, answer, 25, "behavioral")

	require.Equal(t, 60, result.WordCount)
	require.Equal(t, 144, result.SpeakingRateWpm)
	require.Equal(t, 0, result.FillerWordCount)

	assert.GreaterOrEqual(t, result.OverallScore, 80)
	assert.GreaterOrEqual(t, len(result.Strengths), 4)
	assert.Equal(t, []string{"Continue practicing to build confidence"}, result.Improvements)
}

func TestAnalyze_Deterministic(t *testing.T) {
	question := "What is your greatest professional achievement?"
	answer := "My greatest achievement was leading the migration of our billing system, which reduced costs significantly."

	first := Analyze(question, answer, 20, "behavioral")
	second := Analyze(question, answer, 20, "behavioral")

	assert.Equal(t, first, second)
}

func TestAnalyze_ScoresStayInRange(t *testing.T) {
	cases := []struct {
		name     string
		question string
		answer   string
		duration float64
		qType    string
	}{
		{"empty everything", "", "", 0, ""},
		{"empty question", "", "An answer with some reasonable words in it for testing purposes here.", 12, "general"},
		{"zero duration", "Why do you want this job?", "Because the work matches my experience.", 0, "career"},
		{"negative duration", "Why do you want this job?", "Because the work matches my experience.", -5, "career"},
		{"filler heavy", "Tell me about yourself", "um uh like you know basically I just really very so well literally actually", 8, "introduction"},
		{"rapid speech", "Explain your testing strategy", "I test everything twice and then deploy with confidence after running the full suite against staging data", 3, "technical"},
		{"single word", "Describe your leadership style", "collaborative", 2, "behavioral"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Analyze(tc.question, tc.answer, tc.duration, tc.qType)

			for name, score := range map[string]int{
				"overall":         result.OverallScore,
				"relevance":       result.Relevance,
				"clarity":         result.Clarity,
				"completeness":    result.Completeness,
				"professionalism": result.Professionalism,
			} {
				assert.GreaterOrEqual(t, score, 0, name)
				assert.LessOrEqual(t, score, 100, name)
			}

			assert.NotEmpty(t, result.Strengths)
			assert.NotEmpty(t, result.Improvements)
			assert.NotEmpty(t, result.DetailedFeedback)
		})
	}
}

func TestAnalyze_OverallIsWeightedCombination(t *testing.T) {
	cases := []struct {
		question string
		answer   string
		duration float64
		qType    string
	}{
		{"Tell me about yourself", "", 10, "introduction"},
		{"Describe a project", "I built a small tool", 5, "technical"},
		{
			"Tell me about a time when you faced a difficult challenge with your team",
			"In my previous role our team faced a difficult challenge and we solved it together with a clear process.",
			9,
			"behavioral",
		},
	}

	for _, tc := range cases {
		result := Analyze(tc.question, tc.answer, tc.duration, tc.qType)

		expected := int(math.Round(
			0.35*float64(result.Relevance) +
				0.25*float64(result.Clarity) +
				0.25*float64(result.Completeness) +
				0.15*float64(result.Professionalism),
		))
		assert.Equal(t, expected, result.OverallScore)
	}
}

func TestAnalyze_SpeakingRateZeroWithoutDuration(t *testing.T) {
	result := Analyze("Any question at all", "some words were spoken here", 0, "general")
	assert.Equal(t, 0, result.SpeakingRateWpm)
}

func TestAnalyze_IntroductionNeedsLongerAnswers(t *testing.T) {
	// 39 words: clears the general minimum of 30 but falls short of the
	// introduction minimum of 40.
	answer := "I am a software engineer with eight years of experience building web platforms. " +
		"I enjoy mentoring newer developers and shipping reliable products. " +
		"My recent work focused on payments infrastructure and performance. " +
		"Outside work I contribute to open source projects."

	intro := Analyze("Tell me about yourself and your background story", answer, 20, "introduction")
	general := Analyze("Tell me about yourself and your background story", answer, 20, "general")

	// Same text scores lower against the stricter introduction target.
	assert.Less(t, intro.Completeness, general.Completeness)
}
