// Package summarize condenses contract text through a chat model. A summary
// is decoration on the validation report, so failures here never abort a run:
// they are folded into the summary slot as a descriptive message.
package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/contractlens/internal/cache"
	"github.com/hyperifyio/contractlens/internal/llm"
	"github.com/hyperifyio/contractlens/internal/normalize"
)

// MinInputChars is the shortest input the summarizer is asked to handle.
// Anything shorter gets the sentinel message without a model call.
const MinInputChars = 50

// TooShortMessage is returned verbatim when the input is under MinInputChars.
const TooShortMessage = "Input text is too short for summarization."

const defaultMinWords = 150
const defaultMaxWords = 500

// Service produces contract summaries via an OpenAI-compatible model.
type Service struct {
	Client llm.Client
	Model  string
	Cache  *cache.ResponseCache

	// MinWords and MaxWords bound the requested summary length; zero values
	// fall back to the defaults.
	MinWords int
	MaxWords int
}

// Summary returns a condensed rendering of text. It never fails: input under
// MinInputChars yields TooShortMessage, and any model error is converted into
// a "Summary generation failed" message so the rest of the report still
// renders.
func (s *Service) Summary(ctx context.Context, text string) string {
	text = strings.TrimSpace(normalize.Collapse(text))
	if utf8.RuneCountInString(text) < MinInputChars {
		return TooShortMessage
	}
	out, err := s.generate(ctx, text)
	if err != nil {
		return fmt.Sprintf("Summary generation failed: %v", err)
	}
	return out
}

func (s *Service) generate(ctx context.Context, text string) (string, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return "", fmt.Errorf("summarizer not configured")
	}
	system := "You are a careful legal assistant. Summarize the provided contract text faithfully. Do not invent obligations, parties, amounts, or dates that are not in the text. Output only the summary as plain prose."
	user := s.buildUserMessage(text)

	// Cache by model+prompt so re-validating the same contract is deterministic.
	key := cache.KeyFrom(s.Model, system+"\n\n"+user)
	if s.Cache != nil {
		if raw, ok, _ := s.Cache.Get(ctx, key); ok {
			var cached struct {
				Summary string `json:"summary"`
			}
			if err := json.Unmarshal(raw, &cached); err == nil && strings.TrimSpace(cached.Summary) != "" {
				return cached.Summary, nil
			}
		}
	}

	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.1,
		N:           1,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summary call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("model returned empty summary")
	}
	if s.Cache != nil {
		payload, _ := json.Marshal(map[string]string{"summary": out})
		_ = s.Cache.Save(ctx, key, payload)
	}
	return out, nil
}

func (s *Service) buildUserMessage(text string) string {
	minWords, maxWords := s.MinWords, s.MaxWords
	if minWords <= 0 {
		minWords = defaultMinWords
	}
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize the following contract in %d to %d words. Cover the parties, subject matter, key obligations, payment terms, and termination conditions when present.", minWords, maxWords))
	sb.WriteString("\n\nContract text:\n\n")
	sb.WriteString(text)
	return sb.String()
}
