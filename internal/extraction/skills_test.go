package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("experienced in PYTHON and docker")
	assert.Equal(t, []string{"Python", "Docker"}, skills)
}

// TestExtractSkills_VocabularyOrder verifies inclusion order follows the
// reference vocabulary, not the order of appearance in the text.
func TestExtractSkills_VocabularyOrder(t *testing.T) {
	skills := ExtractSkills("I love React and also Python")
	require.Len(t, skills, 2)
	assert.Equal(t, "Python", skills[0])
	assert.Equal(t, "React", skills[1])
}

func TestExtractSkills_CapAtEight(t *testing.T) {
	text := "Python JavaScript Ruby Swift Kotlin Rust TypeScript HTML CSS React Angular"
	skills := ExtractSkills(text)
	assert.Len(t, skills, 8)
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("Python python PYTHON Python")
	assert.Equal(t, []string{"Python"}, skills)
}

// TestExtractSkills_FromVocabularyOnly verifies every returned skill is a
// vocabulary entry.
func TestExtractSkills_FromVocabularyOnly(t *testing.T) {
	skills := ExtractSkills("Python, Blub, COBOL-2000, React, FrobnicateScript")
	for _, skill := range skills {
		assert.Contains(t, skillVocabulary, skill)
	}
	assert.Equal(t, []string{"Python", "React"}, skills)
}

func TestExtractSkills_SubstringMatches(t *testing.T) {
	// "PostgreSQL" also matches the shorter vocabulary entry "SQL"; the
	// heuristic accepts this kind of false positive.
	skills := ExtractSkills("worked with PostgreSQL daily")
	assert.Equal(t, []string{"SQL", "PostgreSQL"}, skills)
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := strings.Repeat("Python React Docker\n", 3)
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	assert.Equal(t, first, second)
}
