// Package analysis scores transcribed interview answers with deterministic
// text heuristics: keyword overlap against the question, filler-word
// density, speaking pace and length tiers. Pure computation, no I/O and no
// state; identical inputs always produce identical results, and every
// input, including an empty transcript, yields a fully populated result.
package analysis

import (
	"math"
	"strings"
)

// Weights combining the four sub-scores into the overall score.
const (
	relevanceWeight       = 0.35
	clarityWeight         = 0.25
	completenessWeight    = 0.25
	professionalismWeight = 0.15
)

// AnalysisResult is the full outcome of scoring one answer.
type AnalysisResult struct {
	OverallScore     int      `json:"overall_score"`
	Relevance        int      `json:"relevance"`
	Clarity          int      `json:"clarity"`
	Completeness     int      `json:"completeness"`
	Professionalism  int      `json:"professionalism"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	DetailedFeedback string   `json:"detailed_feedback"`
	WordCount        int      `json:"word_count"`
	SpeakingRateWpm  int      `json:"speaking_rate_wpm"`
	FillerWordCount  int      `json:"filler_word_count"`
	KeywordMatches   []string `json:"keyword_matches"`
}

// answerMetrics carries every signal the scoring rules read.
type answerMetrics struct {
	questionType         string
	loweredAnswer        string
	wordCount            int
	speakingRate         int
	fillerCount          int
	fillerRatio          float64
	sentenceCount        int
	questionKeywordCount int
	matchedCount         int
	keywordMatches       []string
	professionalHits     int
	hasCasualWord        bool
	minWords             int
	idealWords           int
}

// Analyze scores a transcribed answer against its question. durationSeconds
// is the elapsed speaking time; questionType tweaks keyword extraction
// ("technical") and length targets ("introduction") and is otherwise free
// form.
func Analyze(question, answer string, durationSeconds float64, questionType string) AnalysisResult {
	m := buildMetrics(question, answer, durationSeconds, questionType)

	relevance := scoreRelevance(m)
	clarity := scoreClarity(m)
	completeness := scoreCompleteness(m)
	professionalism := scoreProfessionalism(m)

	overall := int(math.Round(
		relevanceWeight*float64(relevance) +
			clarityWeight*float64(clarity) +
			completenessWeight*float64(completeness) +
			professionalismWeight*float64(professionalism),
	))

	return AnalysisResult{
		OverallScore:     overall,
		Relevance:        relevance,
		Clarity:          clarity,
		Completeness:     completeness,
		Professionalism:  professionalism,
		Strengths:        buildStrengths(relevance, clarity, completeness, professionalism, m),
		Improvements:     buildImprovements(relevance, clarity, completeness, professionalism, m),
		DetailedFeedback: buildDetailedFeedback(relevance, clarity, completeness, professionalism),
		WordCount:        m.wordCount,
		SpeakingRateWpm:  m.speakingRate,
		FillerWordCount:  m.fillerCount,
		KeywordMatches:   m.keywordMatches,
	}
}

func buildMetrics(question, answer string, durationSeconds float64, questionType string) *answerMetrics {
	lowered := strings.ToLower(answer)
	tokens := tokenize(answer)

	questionKeywords := extractKeywords(question, questionType)
	answerKeywords := extractKeywords(answer, questionType)
	matches := matchKeywords(questionKeywords, answerKeywords, questionType)

	wordCount := len(tokens)

	rate := 0
	if durationSeconds > 0 {
		rate = int(math.Round(float64(wordCount) / durationSeconds * 60))
	}

	fillers := countFillerWords(lowered)
	ratio := 0.0
	if wordCount > 0 {
		ratio = float64(fillers) / float64(wordCount)
	}

	minWords, idealWords := wordTargets(questionType)

	return &answerMetrics{
		questionType:         questionType,
		loweredAnswer:        lowered,
		wordCount:            wordCount,
		speakingRate:         rate,
		fillerCount:          fillers,
		fillerRatio:          ratio,
		sentenceCount:        countSentences(answer),
		questionKeywordCount: len(questionKeywords),
		matchedCount:         len(matches),
		keywordMatches:       matches,
		professionalHits:     countProfessionalHits(tokens),
		hasCasualWord:        hasCasualLanguage(lowered),
		minWords:             minWords,
		idealWords:           idealWords,
	}
}
