package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStrengths_FallbackWhenNothingEarned(t *testing.T) {
	m := &answerMetrics{wordCount: 12, speakingRate: 90}
	got := buildStrengths(50, 50, 50, 50, m)
	assert.Equal(t, []string{"Attempted to answer the question"}, got)
}

func TestBuildStrengths_EmptyTranscriptEarnsOnlyFallback(t *testing.T) {
	// High clarity and professionalism mean nothing when nothing was said.
	m := &answerMetrics{wordCount: 0}
	got := buildStrengths(0, 100, 60, 100, m)
	assert.Equal(t, []string{"Attempted to answer the question"}, got)
}

func TestBuildStrengths_AppendsInPriorityOrder(t *testing.T) {
	m := &answerMetrics{wordCount: 55, speakingRate: 140, matchedCount: 4}
	got := buildStrengths(85, 85, 85, 90, m)

	assert.Equal(t, []string{
		"Directly addressed the question",
		"Clear delivery with minimal filler words",
		"Thorough, well-developed answer",
		"Professional communication style",
		"Excellent speaking pace",
		"Provided substantial content",
		"Covered the key topics from the question",
	}, got)
}

func TestBuildImprovements_FallbackWhenNothingFlagged(t *testing.T) {
	m := &answerMetrics{wordCount: 60, speakingRate: 140}
	got := buildImprovements(90, 90, 90, 90, m)
	assert.Equal(t, []string{"Continue practicing to build confidence"}, got)
}

func TestBuildImprovements_AppendsInPriorityOrder(t *testing.T) {
	m := &answerMetrics{wordCount: 10, speakingRate: 200, fillerCount: 5}
	got := buildImprovements(0, 0, 0, 0, m)

	assert.Equal(t, []string{
		"Focus more directly on the specific question asked",
		"Reduce filler words for a clearer delivery",
		"Expand your answer with more detail and examples",
		"Use more professional language",
		"Practice reducing filler words",
		"Slow down your speaking pace",
		"Elaborate more in your answers",
	}, got)
}

func TestBuildImprovements_SlowPace(t *testing.T) {
	m := &answerMetrics{wordCount: 40, speakingRate: 70}
	got := buildImprovements(90, 90, 90, 90, m)
	assert.Contains(t, got, "Pick up the pace slightly to sound more fluent")
}

func TestBuildDetailedFeedback_Tiers(t *testing.T) {
	cases := []struct {
		name   string
		scores [4]int
		want   string
	}{
		{"excellent", [4]int{90, 90, 90, 90}, "Excellent response overall."},
		{"good", [4]int{70, 70, 70, 70}, "Good response with room to polish."},
		{
			"decent with every corrective clause",
			[4]int{60, 60, 60, 60},
			"Decent response that needs some refinement." +
				" Work on addressing the question more directly." +
				" Aim for a clearer, more fluent delivery with fewer fillers." +
				" Develop your answers more fully with concrete examples.",
		},
		{
			"poor with a single lagging dimension",
			[4]int{100, 100, 0, 0},
			"This response needs significant improvement." +
				" Develop your answers more fully with concrete examples.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildDetailedFeedback(tc.scores[0], tc.scores[1], tc.scores[2], tc.scores[3])
			assert.Equal(t, tc.want, got)
		})
	}
}
