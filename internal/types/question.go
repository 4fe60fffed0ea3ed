package types

// Difficulty classifies how demanding an interview question is.
type Difficulty string

// Difficulty levels, in ascending order.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question is a single interview question within a session.
// IDs are 1-based and sequential in synthesis order.
type Question struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Type       string     `json:"type"`
	Category   string     `json:"category,omitempty"`
}
