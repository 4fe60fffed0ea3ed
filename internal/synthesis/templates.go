package synthesis

import "github.com/jonathan/interview-coach/internal/types"

// fixedQuestion is a question template without an ID; IDs are assigned in
// append order during synthesis.
type fixedQuestion struct {
	text       string
	difficulty types.Difficulty
	qType      string
	category   string
}

// introQuestions always open the interview.
var introQuestions = []fixedQuestion{
	{
		text:       "Can you please introduce yourself and tell us about your professional background?",
		difficulty: types.DifficultyEasy,
		qType:      "Self-Introduction",
		category:   "Basic",
	},
	{
		text:       "What motivated you to pursue a career in this field, and what are your key strengths?",
		difficulty: types.DifficultyEasy,
		qType:      "Self-Introduction",
		category:   "Background",
	},
}

// closingQuestions always end the profile-driven interview, before any
// generic padding.
var closingQuestions = []fixedQuestion{
	{
		text:       "Can you describe a time you received difficult feedback and what you did with it?",
		difficulty: types.DifficultyMedium,
		qType:      "Behavioral",
		category:   "Self-Reflection",
	},
	{
		text:       "What technical skills are you currently working to improve, and how are you going about it?",
		difficulty: types.DifficultyEasy,
		qType:      "Career Development",
		category:   "Future Goals",
	},
	{
		text:       "Where do you see your career in the next 3-5 years, and how does this position align with your goals?",
		difficulty: types.DifficultyMedium,
		qType:      "Career Goals",
		category:   "Future Planning",
	},
}

// genericFallbacks pad thin interviews up to the minimum question count.
// The list is consumed in order and never looped; running out is accepted.
var genericFallbacks = []string{
	"Can you describe a time when you had to work under pressure to meet a tight deadline?",
	"How do you approach learning new technologies or programming languages?",
	"Can you explain a technical concept to someone who doesn't have a technical background?",
	"What development tools and IDEs are you most comfortable using, and why?",
	"How do you handle code reviews and feedback on your work?",
	"What version control systems have you worked with, and what's your experience with them?",
	"Can you describe your experience with testing and quality assurance processes?",
	"How do you stay updated with the latest industry trends and technologies?",
	"What's your approach to debugging complex issues in your code?",
	"Can you describe a time when you had to collaborate with a difficult team member and how you handled it?",
}

// jobDescriptionQuestions is the fixed sequence returned for
// job-description sources, where no profile extraction happens.
var jobDescriptionQuestions = []fixedQuestion{
	{
		text:       "What interests you about this position and how does it align with your career goals?",
		difficulty: types.DifficultyEasy,
		qType:      "General",
	},
	{
		text:       "How would your skills and experience help you succeed in this role?",
		difficulty: types.DifficultyMedium,
		qType:      "Experience",
	},
	{
		text:       "Can you describe a challenging project you worked on and how it demonstrates your ability to handle this position's responsibilities?",
		difficulty: types.DifficultyHard,
		qType:      "Project",
	},
}
