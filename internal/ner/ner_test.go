package ner

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/contractlens/internal/cache"
)

type fakeClient struct {
	calls   int
	content string
	err     error
}

func (f *fakeClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.content},
		}},
	}, nil
}

func TestRecognize_ParsesJSONArray(t *testing.T) {
	fc := &fakeClient{content: `[{"text":"Acme Corp","label":"ORG"},{"text":"Jane Doe","label":"PER"}]`}
	s := &Service{Client: fc, Model: "test-model"}
	got, err := s.Recognize(context.Background(), "Acme Corp hired Jane Doe.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	want := []Entity{{Text: "Acme Corp", Label: "ORG"}, {Text: "Jane Doe", Label: "PER"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecognize_ToleratesMarkdownFence(t *testing.T) {
	fc := &fakeClient{content: "```json\n[{\"text\":\"Helsinki\",\"label\":\"LOC\"}]\n```"}
	s := &Service{Client: fc, Model: "test-model"}
	got, err := s.Recognize(context.Background(), "Registered in Helsinki.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Helsinki" || got[0].Label != "LOC" {
		t.Fatalf("unexpected entities: %v", got)
	}
}

func TestRecognize_DropsEmptySurfaces(t *testing.T) {
	fc := &fakeClient{content: `[{"text":"","label":"MISC"},{"text":"Acme","label":"ORG"}]`}
	s := &Service{Client: fc, Model: "test-model"}
	got, err := s.Recognize(context.Background(), "Acme.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Acme" {
		t.Fatalf("expected empty surfaces dropped, got %v", got)
	}
}

func TestRecognize_ErrorsPropagate(t *testing.T) {
	fc := &fakeClient{err: fmt.Errorf("boom")}
	s := &Service{Client: fc, Model: "test-model"}
	if _, err := s.Recognize(context.Background(), "text"); err == nil {
		t.Fatalf("expected error from failing client")
	}
}

func TestRecognize_NonJSONReplyIsAnError(t *testing.T) {
	fc := &fakeClient{content: "I found two organizations."}
	s := &Service{Client: fc, Model: "test-model"}
	if _, err := s.Recognize(context.Background(), "text"); err == nil {
		t.Fatalf("expected parse error for prose reply")
	}
}

func TestRecognize_UsesCacheOnRepeatRuns(t *testing.T) {
	fc := &fakeClient{content: `[{"text":"Acme","label":"ORG"}]`}
	s := &Service{Client: fc, Model: "test-model", Cache: &cache.ResponseCache{Dir: t.TempDir()}}
	ctx := context.Background()
	first, err := s.Recognize(ctx, "Acme.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	second, err := s.Recognize(ctx, "Acme.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v / %v", first, second)
	}
	if fc.calls != 1 {
		t.Fatalf("expected cache to absorb the second call, got %d calls", fc.calls)
	}
}

func TestUnique_LastLabelWinsFirstOrderKept(t *testing.T) {
	in := []Entity{
		{Text: "Acme", Label: "ORG"},
		{Text: "Jane Doe", Label: "PER"},
		{Text: "Acme", Label: "MISC"},
	}
	got := Unique(in)
	want := []Entity{
		{Text: "Acme", Label: "MISC"},
		{Text: "Jane Doe", Label: "PER"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSurfaces(t *testing.T) {
	in := []Entity{{Text: "Acme", Label: "ORG"}, {Text: "Helsinki", Label: "LOC"}}
	got := Surfaces(in)
	if !reflect.DeepEqual(got, []string{"Acme", "Helsinki"}) {
		t.Fatalf("unexpected surfaces: %v", got)
	}
}
