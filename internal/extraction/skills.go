// Package extraction derives structured profile features (skills, work
// experiences, projects) from free-form resume text using keyword and
// line-pattern heuristics. All functions are pure: same text in, same
// profile out, no side effects.
//
// This is a heuristic, not a parser; false positives and negatives are
// expected.
package extraction

import "strings"

// maxSkills caps the number of skills kept per profile.
const maxSkills = 8

// skillVocabulary is the fixed reference list of skill and technology
// names matched against resume text. Inclusion order of extracted skills
// follows this list, not the order of appearance in the text.
var skillVocabulary = []string{
	// Programming Languages
	"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Swift", "Kotlin", "Go", "Rust", "TypeScript",
	// Web Technologies
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Django", "Flask", "Spring", "ASP.NET", "Express.js",
	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle", "SQLite", "Redis", "Cassandra",
	// Cloud & DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git", "CI/CD",
	// Data Science
	"Machine Learning", "Deep Learning", "Data Analysis", "Pandas", "NumPy", "TensorFlow", "PyTorch", "scikit-learn",
	// Other
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum", "TDD", "OOP", "Functional Programming",
}

// ExtractSkills returns the skills from the reference vocabulary that occur
// (case-insensitively) anywhere in text, in vocabulary order, deduplicated,
// capped at 8. Empty text yields an empty slice.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	skills := make([]string, 0, maxSkills)
	seen := make(map[string]bool, maxSkills)
	for _, skill := range skillVocabulary {
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
			seen[skill] = true
			if len(skills) >= maxSkills {
				break
			}
		}
	}

	return skills
}
