package extraction

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	maxProjects = 3

	// maxHeadingTokens keeps project matches to short heading lines rather
	// than paragraphs.
	maxHeadingTokens = 5

	// Description lines must sit in this open interval to be kept.
	minDescriptionLen = 10
	maxDescriptionLen = 200
)

// ExtractProjects scans text for short heading lines mentioning "project"
// or "portfolio". The heading (minus a "Project:" prefix) becomes the name;
// the following line becomes the description when its length is strictly
// between 10 and 200 characters. Entries are deduplicated by name and
// capped at 3.
func ExtractProjects(text string) []types.Project {
	lines := nonEmptyLines(text)

	projects := make([]types.Project, 0, maxProjects)
	for i, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "project") && !strings.Contains(lower, "portfolio") {
			continue
		}
		if len(strings.Fields(line)) >= maxHeadingTokens {
			continue
		}

		name := strings.TrimSpace(strings.NewReplacer("Project:", "", "project:", "").Replace(line))

		description := ""
		if i+1 < len(lines) {
			next := lines[i+1]
			if len(next) > minDescriptionLen && len(next) < maxDescriptionLen {
				description = next
			}
		}

		if containsProject(projects, name) {
			continue
		}
		projects = append(projects, types.Project{Name: name, Description: description})
		if len(projects) >= maxProjects {
			break
		}
	}

	return projects
}

func containsProject(list []types.Project, name string) bool {
	for _, p := range list {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ExtractProfile runs all extractors over the same text and bundles the
// results. Extraction is idempotent and never fails.
func ExtractProfile(text string) *types.ExtractedProfile {
	return &types.ExtractedProfile{
		Skills:      ExtractSkills(text),
		Experiences: ExtractExperiences(text),
		Projects:    ExtractProjects(text),
	}
}
