// Package ner extracts named entities from contract text through a chat
// model asked for a strict JSON answer.
package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/contractlens/internal/cache"
	"github.com/hyperifyio/contractlens/internal/llm"
)

// Entity is one recognized mention: the surface text as it appears in the
// document and a category label such as PER, ORG, LOC or MISC.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer turns text into a sequence of entities.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// Service implements Recognizer on top of an OpenAI-compatible model.
type Service struct {
	Client llm.Client
	Model  string
	Cache  *cache.ResponseCache
}

const systemPrompt = "You are a named-entity recognizer. Given a document, list every named entity it mentions. Reply with ONLY a JSON array of objects, each with a \"text\" field holding the entity exactly as written and a \"label\" field that is one of PER, ORG, LOC, MISC. No prose, no markdown fences."

// Recognize asks the model for the entities mentioned in text. The reply must
// be a JSON array of {"text","label"} objects; a stray markdown fence around
// it is tolerated.
func (s *Service) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return nil, fmt.Errorf("recognizer not configured")
	}
	user := "Document:\n\n" + text

	key := cache.KeyFrom(s.Model, systemPrompt+"\n\n"+user)
	if s.Cache != nil {
		if raw, ok, _ := s.Cache.Get(ctx, key); ok {
			if entities, err := parseEntities(string(raw)); err == nil {
				return entities, nil
			}
		}
	}

	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
		N:           1,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("entity recognition call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}
	content := resp.Choices[0].Message.Content
	entities, err := parseEntities(content)
	if err != nil {
		return nil, fmt.Errorf("parse entity response: %w", err)
	}
	if s.Cache != nil {
		payload, _ := json.Marshal(entities)
		_ = s.Cache.Save(ctx, key, payload)
	}
	return entities, nil
}

// parseEntities decodes a JSON array of entities, stripping a surrounding
// markdown fence when the model adds one anyway.
func parseEntities(content string) ([]Entity, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	var entities []Entity
	if err := json.Unmarshal([]byte(trimmed), &entities); err != nil {
		return nil, err
	}
	out := entities[:0]
	for _, e := range entities {
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Unique collapses entities to one entry per surface string, keeping first
// appearance order and the last label seen for each surface.
func Unique(entities []Entity) []Entity {
	labels := make(map[string]string, len(entities))
	order := make([]string, 0, len(entities))
	for _, e := range entities {
		if _, seen := labels[e.Text]; !seen {
			order = append(order, e.Text)
		}
		labels[e.Text] = e.Label
	}
	out := make([]Entity, 0, len(order))
	for _, text := range order {
		out = append(out, Entity{Text: text, Label: labels[text]})
	}
	return out
}

// Surfaces returns just the surface strings, in the order given.
func Surfaces(entities []Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Text)
	}
	return out
}
