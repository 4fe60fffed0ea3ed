// Package synthesis turns an extracted profile into an ordered interview
// question list under a fixed count and priority policy: introduction,
// skills, experience, advanced skills, projects, behavioral closing, then
// generic filler. Synthesis is deterministic and never fails, even for an
// empty profile.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// MinQuestions is the padding target. Reaching it is best-effort: the
	// generic fallback list is consumed at most once.
	MinQuestions = 10

	// MaxQuestions caps the interview. Later-appended, lower-priority
	// questions are dropped first.
	MaxQuestions = 25

	// advancedFloor gates the advanced-skill block: richer profiles that
	// already produced this many questions skip it.
	advancedFloor = 12

	topSkills      = 3
	topExperiences = 2
	topProjects    = 2
)

// builder accumulates questions, assigning 1-based sequential IDs in
// append order.
type builder struct {
	questions []types.Question
}

func (b *builder) add(q fixedQuestion) {
	b.questions = append(b.questions, types.Question{
		ID:         len(b.questions) + 1,
		Question:   q.text,
		Difficulty: q.difficulty,
		Type:       q.qType,
		Category:   q.category,
	})
}

// Synthesize produces the question list for a resume-derived profile.
// IDs are contiguous from 1 and the result length is in
// [min(MinQuestions, generatable), MaxQuestions].
func Synthesize(profile *types.ExtractedProfile) []types.Question {
	b := &builder{}

	for _, q := range introQuestions {
		b.add(q)
	}

	if len(profile.Skills) > 0 {
		b.add(fixedQuestion{
			text:       "Which of your technical skills do you consider strongest, and how have you applied them in your work?",
			difficulty: types.DifficultyMedium,
			qType:      "Technical",
			category:   "Skills Overview",
		})
		for _, skill := range topN(profile.Skills, topSkills) {
			b.add(fixedQuestion{
				text:       fmt.Sprintf("Can you describe a project where you used %s? What was your role and what did you build?", skill),
				difficulty: types.DifficultyMedium,
				qType:      "Technical",
				category:   skill + " Experience",
			})
		}
	}

	if len(profile.Experiences) > 0 {
		b.add(fixedQuestion{
			text:       "Can you walk me through your work experience and how it has prepared you for this role?",
			difficulty: types.DifficultyMedium,
			qType:      "Experience",
			category:   "Work History",
		})
		for i, exp := range profile.Experiences {
			if i >= topExperiences {
				break
			}
			b.add(fixedQuestion{
				text:       fmt.Sprintf("At %s as a %s, what were your key responsibilities and achievements?", exp.Company, exp.Title),
				difficulty: types.DifficultyMedium,
				qType:      "Experience",
				category:   "Work History",
			})
			if i == 0 {
				b.add(fixedQuestion{
					text:       fmt.Sprintf("What was the most challenging project you worked on at %s and how did you handle it?", exp.Company),
					difficulty: types.DifficultyMedium,
					qType:      "Problem-Solving",
					category:   "Work Challenges",
				})
			}
		}
	}

	if len(b.questions) < advancedFloor && len(profile.Skills) > 2 {
		for _, skill := range sliceRange(profile.Skills, 2, 4) {
			b.add(fixedQuestion{
				text:       fmt.Sprintf("Can you explain a complex problem you solved using %s? What was your approach and what did you learn?", skill),
				difficulty: types.DifficultyHard,
				qType:      "Technical",
				category:   "Advanced " + skill,
			})
		}
	}

	if len(profile.Projects) > 0 {
		b.add(fixedQuestion{
			text:       "Which project are you most proud of, and why?",
			difficulty: types.DifficultyHard,
			qType:      "Project",
			category:   "Projects",
		})
		for i, proj := range profile.Projects {
			if i >= topProjects {
				break
			}
			b.add(fixedQuestion{
				text:       fmt.Sprintf("Tell me about your project '%s'. What was your role, and what technologies did you use?", proj.Name),
				difficulty: types.DifficultyHard,
				qType:      "Project",
				category:   "Projects",
			})
		}
	}

	for _, q := range closingQuestions {
		b.add(q)
	}

	for _, text := range genericFallbacks {
		if len(b.questions) >= MinQuestions {
			break
		}
		b.add(fixedQuestion{
			text:       text,
			difficulty: types.DifficultyMedium,
			qType:      "General",
			category:   "Professional Development",
		})
	}

	if len(b.questions) > MaxQuestions {
		b.questions = b.questions[:MaxQuestions]
	}

	return b.questions
}

// SynthesizeGeneric returns the fixed question sequence for sources that
// carry no resume content, such as a plain job description.
func SynthesizeGeneric() []types.Question {
	b := &builder{}
	for _, q := range jobDescriptionQuestions {
		b.add(q)
	}
	return b.questions
}

// ForSource routes to the profile pipeline or the generic sequence.
// Unknown sources are treated as resume-like.
func ForSource(profile *types.ExtractedProfile, source string) []types.Question {
	if strings.EqualFold(strings.TrimSpace(source), types.SourceJobDescription) {
		return SynthesizeGeneric()
	}
	return Synthesize(profile)
}

func topN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

func sliceRange(items []string, from, to int) []string {
	if from > len(items) {
		from = len(items)
	}
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
