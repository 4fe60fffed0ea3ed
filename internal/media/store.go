// Package media persists uploaded answer recordings to the local
// filesystem and hands back opaque path references. Nothing else in the
// system interprets the stored bytes.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Store writes answer videos under a base uploads directory, one
// subdirectory per interview.
type Store struct {
	baseDir string
	logger  *zap.Logger
}

// NewStore creates a media store rooted at baseDir. A nil logger is
// replaced with a no-op one.
func NewStore(baseDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

// SaveAnswer streams the uploaded video to
// <base>/<interviewID>/q<questionID>_<unix>.webm and returns the saved
// path. A partially written file is removed on failure.
func (s *Store) SaveAnswer(interviewID string, questionID int, src io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, interviewID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create interview directory: %w", err)
	}

	filename := fmt.Sprintf("q%d_%d.webm", questionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create video file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save video: %w", err)
	}

	s.logger.Info("answer video saved",
		zap.String("interview_id", interviewID),
		zap.Int("question_id", questionID),
		zap.String("path", path),
		zap.Int64("bytes", written),
	)
	return path, nil
}
