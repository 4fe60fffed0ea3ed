package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects_PrefixStripped(t *testing.T) {
	text := "Project: Resume Analyzer\nA web tool that parses resumes and highlights matching skills.\n"
	projects := ExtractProjects(text)
	require.Len(t, projects, 1)
	assert.Equal(t, "Resume Analyzer", projects[0].Name)
	assert.Equal(t, "A web tool that parses resumes and highlights matching skills.", projects[0].Description)
}

// TestExtractProjects_LongHeadingSkipped verifies paragraph-length lines
// mentioning "project" are not treated as headings.
func TestExtractProjects_LongHeadingSkipped(t *testing.T) {
	text := "I worked on a big project with five teammates over two years\n"
	assert.Empty(t, ExtractProjects(text))
}

func TestExtractProjects_DescriptionLengthWindow(t *testing.T) {
	short := "Project: Alpha\ntiny\n"
	projects := ExtractProjects(short)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].Description)

	long := "Project: Beta\n" + strings.Repeat("x", 250) + "\n"
	projects = ExtractProjects(long)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].Description)
}

func TestExtractProjects_DedupeByName(t *testing.T) {
	text := "Project: Alpha\nA small but genuinely useful utility.\nProject: Alpha\nAnother description of the same thing here.\n"
	projects := ExtractProjects(text)
	assert.Len(t, projects, 1)
}

func TestExtractProjects_CapAtThree(t *testing.T) {
	text := "Project: A\n\nProject: B\n\nProject: C\n\nProject: D\n"
	projects := ExtractProjects(text)
	assert.Len(t, projects, 3)
}

func TestExtractProjects_PortfolioKeyword(t *testing.T) {
	projects := ExtractProjects("My Portfolio Site\nBuilt with plain HTML and a dash of CSS.\n")
	require.Len(t, projects, 1)
	assert.Equal(t, "My Portfolio Site", projects[0].Name)
}

func TestExtractProfile_Idempotent(t *testing.T) {
	text := "Senior Software Engineer\nAcme Corp\nPython and React\nProject: Analyzer\nParses resumes and highlights skills for reviewers.\n"
	first := ExtractProfile(text)
	second := ExtractProfile(text)
	assert.Equal(t, first, second)
}

func TestExtractProfile_EmptyText(t *testing.T) {
	profile := ExtractProfile("")
	assert.True(t, profile.IsEmpty())
}
