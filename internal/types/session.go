package types

import "time"

// Source values accepted by StartInterview. Anything else is treated as
// resume-like input.
const (
	SourceResume         = "resume"
	SourceJobDescription = "job_description"
)

// Answer references externally stored response media for one question.
type Answer struct {
	VideoPath  string    `json:"video_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// InterviewSession is one interview instance: its generated questions and
// the answers accumulated so far. Questions are fixed at creation; Answers
// grows monotonically, with re-uploads overwriting per question ID.
type InterviewSession struct {
	ID             string         `json:"id"`
	Source         string         `json:"source"`
	ContentExcerpt string         `json:"content"`
	Questions      []Question     `json:"questions"`
	Answers        map[int]Answer `json:"answers"`
	CreatedAt      time.Time      `json:"created_at"`
}
