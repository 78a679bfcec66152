package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases and strips punctuation", "Hello, World!", []string{"hello", "world"}},
		{"apostrophes split words", "it's o'clock", []string{"it", "s", "o", "clock"}},
		{"collapses whitespace", "  spaced   out  ", []string{"spaced", "out"}},
		{"keeps digits", "port 8080 open", []string{"port", "8080", "open"}},
		{"empty input", "", []string{}},
		{"punctuation only", "?!...", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(tc.input))
		})
	}
}

func TestCountFillerWords_WordBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   int
	}{
		{"no partial word match", "i liked it", 0},
		{"standalone filler counted once", "i, like, liked it", 1},
		{"multi word phrase", "you know it was hard", 1},
		{"phrase pieces alone do not count", "do you actually know", 1},
		{"repeated fillers accumulate", "um um uh", 3},
		{"multiple distinct fillers", "um so well", 3},
		{"clean answer", "the project shipped on schedule", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countFillerWords(tc.answer))
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Run("drops stop words and short tokens", func(t *testing.T) {
		got := extractKeywords("Describe a challenging project and how you used algorithms to solve it", "behavioral")
		assert.Equal(t, []string{"describe", "challenging", "project", "used", "algorithms", "solve"}, got)
	})

	t.Run("technical questions front-load technology terms", func(t *testing.T) {
		got := extractKeywords("we improved database performance with a better algorithm", "technical")
		assert.Equal(t, []string{"database", "performance", "algorithm", "improved", "better"}, got)
	})

	t.Run("non-technical questions keep token order", func(t *testing.T) {
		got := extractKeywords("we improved database performance with a better algorithm", "behavioral")
		assert.Equal(t, []string{"improved", "database", "performance", "better", "algorithm"}, got)
	})

	t.Run("deduplicates", func(t *testing.T) {
		got := extractKeywords("testing testing testing again again", "behavioral")
		assert.Equal(t, []string{"testing", "again"}, got)
	})
}

func TestMatchKeywords(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got := matchKeywords([]string{"project"}, []string{"project"}, "behavioral")
		assert.Equal(t, []string{"project"}, got)
	})

	t.Run("substring either direction", func(t *testing.T) {
		got := matchKeywords([]string{"algorithms", "lead"}, []string{"algorithm", "leadership"}, "behavioral")
		assert.Equal(t, []string{"algorithms", "lead"}, got)
	})

	t.Run("shared prefix on longer words", func(t *testing.T) {
		// min length 6, prefix of floor(0.7*6)=4 characters
		got := matchKeywords([]string{"testing"}, []string{"tested"}, "behavioral")
		assert.Equal(t, []string{"testing"}, got)
	})

	t.Run("short words need an exact or substring match", func(t *testing.T) {
		got := matchKeywords([]string{"team"}, []string{"tea"}, "behavioral")
		// "team" contains "tea", so substring still applies
		assert.Equal(t, []string{"team"}, got)

		got = matchKeywords([]string{"time"}, []string{"tame"}, "behavioral")
		assert.Empty(t, got)
	})

	t.Run("technical answers credit technology vocabulary", func(t *testing.T) {
		got := matchKeywords([]string{"describe"}, []string{"database", "worked"}, "technical")
		assert.Equal(t, []string{"database"}, got)
	})

	t.Run("technology credit only for technical questions", func(t *testing.T) {
		got := matchKeywords([]string{"describe"}, []string{"database", "worked"}, "behavioral")
		assert.Empty(t, got)
	})

	t.Run("no duplicates", func(t *testing.T) {
		got := matchKeywords([]string{"database"}, []string{"database"}, "technical")
		assert.Equal(t, []string{"database"}, got)
	})
}

func TestCountSentences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"terminator per sentence", "One. Two! Three?", 3},
		{"no terminator still counts", "no punctuation here", 1},
		{"ellipsis collapses", "Wait... what", 2},
		{"blank fragments ignored", "a. . b", 2},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countSentences(tc.input))
		})
	}
}

func TestCountProfessionalHits(t *testing.T) {
	// Prefix matching credits derived forms.
	tokens := []string{"achievements", "resulted", "challenges", "banana", "experienced"}
	assert.Equal(t, 4, countProfessionalHits(tokens))

	assert.Equal(t, 0, countProfessionalHits([]string{"apple", "pear"}))
	assert.Equal(t, 0, countProfessionalHits(nil))
}

func TestHasCasualLanguage(t *testing.T) {
	assert.True(t, hasCasualLanguage("i was gonna finish it"))
	assert.True(t, hasCasualLanguage("yeah we did stuff"))
	// "things" only counts as a whole word
	assert.False(t, hasCasualLanguage("somethings happened overnight"))
	assert.False(t, hasCasualLanguage("a professional summary"))
}
