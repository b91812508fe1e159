package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chorehub/chore-management-api/internal/constants"
	"github.com/sashabaranov/go-openai"
)

// ChoreSuggestionService turns free-form household descriptions into
// chore suggestions via OpenAI. The suggestions are returned to the
// caller for review, never persisted directly.
type ChoreSuggestionService struct {
	client *openai.Client
}

type SuggestedChore struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

func NewChoreSuggestionService(apiKey string) *ChoreSuggestionService {
	return &ChoreSuggestionService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestChores extracts chore suggestions from text using OpenAI GPT.
func (s *ChoreSuggestionService) SuggestChores(ctx context.Context, text string) ([]SuggestedChore, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a household chore planning assistant. Extract concrete chores from the text below.

Text:
%s

Return a JSON array of the extracted chores in this exact shape:
[
  {
    "title": "short chore title",
    "description": "what needs to be done",
    "points": 5
  }
]

Rules:
- points is an integer from 1 to 10 reflecting effort
- return an empty array [] when the text contains no chores
- return only JSON, no explanations`, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content

	var chores []SuggestedChore
	if err := json.Unmarshal([]byte(content), &chores); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	if len(chores) > constants.MaxSuggestedChores {
		chores = chores[:constants.MaxSuggestedChores]
	}

	valid := make([]SuggestedChore, 0, len(chores))
	for _, c := range chores {
		if strings.TrimSpace(c.Title) == "" {
			continue
		}
		if c.Points < 0 {
			c.Points = 0
		}
		valid = append(valid, c)
	}

	return valid, nil
}
