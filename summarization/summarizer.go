package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-wavecleanup/types"
)

const maxSignupsForSummary = 69
const maxPromptLength = 15000 // Rough character limit for prompt

// Summarizer condenses the messages volunteers left when joining the mission.
type Summarizer interface {
	Summarize(ctx context.Context, users []types.User) (string, error)
}

type OpenAISummarizer struct {
	client *openai.Client
}

func NewOpenAISummarizer(client *openai.Client) *OpenAISummarizer {
	return &OpenAISummarizer{client: client}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, users []types.User) (string, error) {
	text := combineMessages(users)
	if text == "" {
		return "", nil
	}
	return callOpenAISummary(ctx, text, len(users), s.client)
}

// combineMessages joins non-empty sign-up messages, capped in count and length.
func combineMessages(users []types.User) string {
	var messages []string
	for _, u := range users {
		if len(messages) >= maxSignupsForSummary {
			break
		}
		if m := strings.TrimSpace(u.Message); m != "" {
			messages = append(messages, m)
		}
	}
	combined := strings.Join(messages, "\n---\n")
	if len(combined) > maxPromptLength {
		combined = combined[:maxPromptLength]
	}
	return combined
}

func callOpenAISummary(ctx context.Context, text string, signups int, client *openai.Client) (string, error) {
	prompt := fmt.Sprintf("Summarize the following %d messages left by volunteers joining an ocean cleanup mission. Focus on the skills offered, the regions mentioned and what people want to help with. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", signups, text)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes volunteer sign-ups for an ocean cleanup organization concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
