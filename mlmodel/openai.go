package mlmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-wavecleanup/analysis"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/types"
)

// OpenAIAnalyzer asks a vision-capable chat model to classify the image.
type OpenAIAnalyzer struct {
	client *openai.Client
	Model  string
}

func NewOpenAIAnalyzer(client *openai.Client) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{client: client, Model: openai.GPT4oMini}
}

type visionReply struct {
	WasteType  string  `json:"wasteType"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity"`
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, f analysis.File) (types.AnalysisResult, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You classify marine litter in photos for an ocean cleanup organization. Answer with JSON only.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt()},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
						URL:    f.PreviewURL(),
						Detail: openai.ImageURLDetailLow,
					}},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		MaxTokens:      100,
		Temperature:    0.2,
	})
	if err != nil {
		return types.AnalysisResult{}, fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return types.AnalysisResult{}, fmt.Errorf("openai returned empty response or choices")
	}
	return parseReply(resp.Choices[0].Message.Content)
}

func prompt() string {
	var labels []string
	for _, c := range mockdata.AnalysisCandidates() {
		labels = append(labels, c.WasteType)
	}
	return fmt.Sprintf(`Identify the main type of waste in this image. Prefer one of: %s.
Reply as {"wasteType": string, "confidence": number between 0 and 1, "severity": "low" | "medium" | "high"}.`,
		strings.Join(labels, ", "))
}

func parseReply(content string) (types.AnalysisResult, error) {
	var reply visionReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &reply); err != nil {
		return types.AnalysisResult{}, fmt.Errorf("decoding model reply: %w", err)
	}
	if strings.TrimSpace(reply.WasteType) == "" {
		return types.AnalysisResult{}, ErrNoPrediction
	}

	severity, err := types.ParseSeverity(reply.Severity)
	if err != nil {
		severity = SeverityFor(reply.WasteType)
	}
	return types.AnalysisResult{
		WasteType:  strings.TrimSpace(reply.WasteType),
		Confidence: clamp(reply.Confidence),
		Severity:   severity,
	}, nil
}
