package analysis

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go-wavecleanup/forms"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

// DefaultDelay is the artificial processing time of the mock analyzer.
const DefaultDelay = 3 * time.Second

// Analyzer classifies the waste visible in one image.
type Analyzer interface {
	Analyze(ctx context.Context, f File) (types.AnalysisResult, error)
}

// MockAnalyzer never looks at the image: it waits, then draws one fixed candidate.
type MockAnalyzer struct {
	Delay      time.Duration
	Candidates []types.AnalysisResult
	Pick       func(n int) int
}

func NewMockAnalyzer(delay time.Duration) *MockAnalyzer {
	return &MockAnalyzer{
		Delay:      delay,
		Candidates: mockdata.AnalysisCandidates(),
		Pick:       rand.IntN,
	}
}

func (m *MockAnalyzer) Analyze(ctx context.Context, _ File) (types.AnalysisResult, error) {
	if len(m.Candidates) == 0 {
		return types.AnalysisResult{}, errors.New("mock analyzer has no candidates")
	}

	if m.Delay > 0 {
		t := time.NewTimer(m.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return types.AnalysisResult{}, ctx.Err()
		}
	}

	pick := m.Pick
	if pick == nil {
		pick = rand.IntN
	}
	i := pick(len(m.Candidates))
	if i < 0 || i >= len(m.Candidates) {
		return types.AnalysisResult{}, fmt.Errorf("candidate index %d out of range", i)
	}
	return m.Candidates[i], nil
}

// CompletionNotice is shown once a result is available.
func CompletionNotice(r types.AnalysisResult) forms.Notice {
	return forms.Notice{
		Title:       "Analysis Complete!",
		Description: fmt.Sprintf("Detected %s with %d%% confidence.", r.WasteType, r.ConfidencePercent()),
		Variant:     forms.VariantDefault,
	}
}
