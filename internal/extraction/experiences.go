package extraction

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	maxExperiences = 3

	// maxCompanyLineLen bounds how long the line following a role line may
	// be for it to count as a company name rather than body text.
	maxCompanyLineLen = 50

	// fallbackCompany is used when no plausible company line follows a
	// role line.
	fallbackCompany = "a company"
)

// roleKeywords mark a line as a probable job title.
var roleKeywords = []string{
	"developer", "engineer", "analyst", "specialist", "manager", "designer", "researcher",
}

// ExtractExperiences scans text line by line for role-keyword matches and
// pairs each matching line with the following line as the company, falling
// back to "a company" when the next line is absent or too long. Entries are
// deduplicated by (title, company) and capped at 3.
func ExtractExperiences(text string) []types.Experience {
	lines := nonEmptyLines(text)

	experiences := make([]types.Experience, 0, maxExperiences)
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), roleKeywords) {
			continue
		}

		exp := types.Experience{Title: line, Company: fallbackCompany}
		if i+1 < len(lines) && len(lines[i+1]) < maxCompanyLineLen {
			exp.Company = lines[i+1]
		}

		if containsExperience(experiences, exp) {
			continue
		}
		experiences = append(experiences, exp)
		if len(experiences) >= maxExperiences {
			break
		}
	}

	return experiences
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func containsExperience(list []types.Experience, exp types.Experience) bool {
	for _, e := range list {
		if e.Title == exp.Title && e.Company == exp.Company {
			return true
		}
	}
	return false
}
