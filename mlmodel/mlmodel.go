// Package mlmodel holds the analyzers that look at the uploaded image instead of
// drawing a canned result: an HTTP inference service and an OpenAI vision model.
package mlmodel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go-wavecleanup/analysis"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

// MLRequest is the body posted to the inference service.
type MLRequest struct {
	Filename  string `json:"filename"`
	MediaType string `json:"mediaType"`
	Image     string `json:"image"` // base64
}

// MLResponse maps each waste label to its probability.
type MLResponse map[string]float64

var ErrNoPrediction = errors.New("model returned no prediction")

// Client calls a waste classification model served over HTTP.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{URL: url, HTTPClient: http.DefaultClient}
}

func (c *Client) CallModel(ctx context.Context, input MLRequest) (MLResponse, error) {
	payloadBytes, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("ML model returned status: " + resp.Status)
	}

	var mlResp MLResponse
	if err := json.NewDecoder(resp.Body).Decode(&mlResp); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	return mlResp, nil
}

func (c *Client) Analyze(ctx context.Context, f analysis.File) (types.AnalysisResult, error) {
	scores, err := c.CallModel(ctx, MLRequest{
		Filename:  f.Name,
		MediaType: f.MediaType,
		Image:     base64.StdEncoding.EncodeToString(f.Data),
	})
	if err != nil {
		return types.AnalysisResult{}, err
	}
	return Best(scores)
}

// Best picks the highest scoring label. Ties go to the alphabetically first label.
func Best(scores MLResponse) (types.AnalysisResult, error) {
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return types.AnalysisResult{}, ErrNoPrediction
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	return types.AnalysisResult{
		WasteType:  best,
		Confidence: clamp(scores[best]),
		Severity:   SeverityFor(best),
	}, nil
}

// SeverityFor looks the waste type up among the known candidates. Unknown types are medium.
func SeverityFor(wasteType string) types.Severity {
	for _, c := range mockdata.AnalysisCandidates() {
		if strings.EqualFold(c.WasteType, wasteType) {
			return c.Severity
		}
	}
	return types.Medium
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
