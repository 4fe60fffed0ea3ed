// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

// Experience represents one work-history entry pulled from resume text.
type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Project represents one project entry pulled from resume text.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ExtractedProfile holds the structured features derived from free-form
// resume text. Field order is significant: skills keep vocabulary order,
// experiences and projects keep first-match order.
type ExtractedProfile struct {
	Skills      []string     `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
}

// IsEmpty reports whether extraction found nothing usable.
func (p *ExtractedProfile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Experiences) == 0 && len(p.Projects) == 0
}
