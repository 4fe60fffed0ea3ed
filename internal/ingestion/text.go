// Package ingestion validates and normalizes uploaded resume and
// job-description content before it reaches the interview pipeline.
package ingestion

import (
	"regexp"
	"strings"
)

// CleanText normalizes text content while preserving line structure, which
// the extraction heuristics depend on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}
