package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MaxUploadBytes is the resume upload size ceiling.
	MaxUploadBytes = 5 << 20 // 5 MiB

	// MaxContentChars bounds how much text is handed to the interview
	// pipeline; anything beyond is cut off.
	MaxContentChars = 10000

	truncationMarker = "\n\n[Content truncated for processing]"
)

// allowedExtensions is the resume file allow-list.
var allowedExtensions = []string{".pdf", ".docx", ".txt"}

// ErrUnsupportedFileType indicates the uploaded file extension is not on
// the allow-list.
type ErrUnsupportedFileType struct {
	Extension string
}

func (e *ErrUnsupportedFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %s. Allowed types: %s",
		e.Extension, strings.Join(allowedExtensions, ", "))
}

// ErrFileTooLarge indicates the upload exceeds MaxUploadBytes.
type ErrFileTooLarge struct {
	Size int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file too large: %d bytes. Maximum size is %d bytes", e.Size, MaxUploadBytes)
}

// ValidateUpload checks the filename extension against the allow-list and
// the declared size against the upload ceiling.
func ValidateUpload(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isAllowedExtension(ext) {
		return &ErrUnsupportedFileType{Extension: ext}
	}
	if size > MaxUploadBytes {
		return &ErrFileTooLarge{Size: size}
	}
	return nil
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// DecodeText converts raw upload bytes to text, dropping invalid UTF-8
// sequences instead of failing.
func DecodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// TruncateContent cuts text past MaxContentChars, appending a marker so
// downstream consumers can tell the content was shortened.
func TruncateContent(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxContentChars {
		return text
	}
	return string(runes[:MaxContentChars]) + truncationMarker
}
