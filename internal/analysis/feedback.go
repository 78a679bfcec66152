package analysis

import "strings"

// Fallback entries keep the narrative lists non-empty for any input.
const (
	fallbackStrength    = "Attempted to answer the question"
	fallbackImprovement = "Continue practicing to build confidence"
)

// buildStrengths appends every observation that holds, in priority order.
// An empty transcript earns only the fallback: the conditions describe
// qualities of speech that was actually delivered.
func buildStrengths(relevance, clarity, completeness, professionalism int, m *answerMetrics) []string {
	strengths := []string{}

	if m.wordCount > 0 {
		if relevance >= 80 {
			strengths = append(strengths, "Directly addressed the question")
		}
		if clarity >= 80 {
			strengths = append(strengths, "Clear delivery with minimal filler words")
		}
		if completeness >= 80 {
			strengths = append(strengths, "Thorough, well-developed answer")
		}
		if professionalism >= 85 {
			strengths = append(strengths, "Professional communication style")
		}
		if m.speakingRate >= 120 && m.speakingRate <= 160 {
			strengths = append(strengths, "Excellent speaking pace")
		}
		if m.wordCount >= 50 {
			strengths = append(strengths, "Provided substantial content")
		}
		if m.matchedCount >= 3 {
			strengths = append(strengths, "Covered the key topics from the question")
		}
	}

	if len(strengths) == 0 {
		strengths = append(strengths, fallbackStrength)
	}
	return strengths
}

// buildImprovements appends every shortcoming that holds, in priority order.
func buildImprovements(relevance, clarity, completeness, professionalism int, m *answerMetrics) []string {
	improvements := []string{}

	if relevance < 70 {
		improvements = append(improvements, "Focus more directly on the specific question asked")
	}
	if clarity < 70 {
		improvements = append(improvements, "Reduce filler words for a clearer delivery")
	}
	if completeness < 70 {
		improvements = append(improvements, "Expand your answer with more detail and examples")
	}
	if professionalism < 75 {
		improvements = append(improvements, "Use more professional language")
	}
	if float64(m.fillerCount) > 0.10*float64(m.wordCount) {
		improvements = append(improvements, "Practice reducing filler words")
	}
	if m.speakingRate > 180 {
		improvements = append(improvements, "Slow down your speaking pace")
	}
	if m.speakingRate > 0 && m.speakingRate < 100 {
		improvements = append(improvements, "Pick up the pace slightly to sound more fluent")
	}
	if m.wordCount < 20 {
		improvements = append(improvements, "Elaborate more in your answers")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, fallbackImprovement)
	}
	return improvements
}

// buildDetailedFeedback opens with a sentence matching the average tier and
// appends one corrective clause per lagging sub-score.
func buildDetailedFeedback(relevance, clarity, completeness, professionalism int) string {
	avg := float64(relevance+clarity+completeness+professionalism) / 4

	var b strings.Builder
	switch {
	case avg >= 85:
		b.WriteString("Excellent response overall.")
	case avg >= 70:
		b.WriteString("Good response with room to polish.")
	case avg >= 55:
		b.WriteString("Decent response that needs some refinement.")
	default:
		b.WriteString("This response needs significant improvement.")
	}

	if relevance < 70 {
		b.WriteString(" Work on addressing the question more directly.")
	}
	if clarity < 70 {
		b.WriteString(" Aim for a clearer, more fluent delivery with fewer fillers.")
	}
	if completeness < 70 {
		b.WriteString(" Develop your answers more fully with concrete examples.")
	}

	return b.String()
}
