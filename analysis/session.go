package analysis

import (
	"context"
	"errors"
	"sync"

	"go-wavecleanup/types"
)

var (
	ErrNoFile             = errors.New("no image selected")
	ErrAnalysisInProgress = errors.New("analysis already running")
)

// Session is the state of one upload page: the selected image, its preview,
// whether analysis is running and the last result.
type Session struct {
	mu        sync.Mutex
	analyzer  Analyzer
	file      *File
	preview   string
	analyzing bool
	result    *types.AnalysisResult
}

func NewSession(analyzer Analyzer) *Session {
	return &Session{analyzer: analyzer}
}

// Select validates f and makes it the current image. A rejected file leaves the
// session untouched.
func (s *Session) Select(f File) error {
	if err := ValidateUpload(f.Size, f.MediaType); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = &f
	s.preview = f.PreviewURL()
	s.result = nil
	return nil
}

// Analyze runs the analyzer on the selected image and stores its result.
func (s *Session) Analyze(ctx context.Context) (types.AnalysisResult, error) {
	s.mu.Lock()
	if s.file == nil {
		s.mu.Unlock()
		return types.AnalysisResult{}, ErrNoFile
	}
	if s.analyzing {
		s.mu.Unlock()
		return types.AnalysisResult{}, ErrAnalysisInProgress
	}
	s.analyzing = true
	f := *s.file
	s.mu.Unlock()

	result, err := s.analyzer.Analyze(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = false
	if err != nil {
		return types.AnalysisResult{}, err
	}
	s.result = &result
	return result, nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = nil
	s.preview = ""
	s.result = nil
}

func (s *Session) File() (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return File{}, false
	}
	return *s.file, true
}

func (s *Session) PreviewURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

func (s *Session) Analyzing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzing
}

func (s *Session) Result() (types.AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return types.AnalysisResult{}, false
	}
	return *s.result, true
}
