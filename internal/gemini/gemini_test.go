package gemini

import (
	"context"
	"strings"
	"testing"
)

func TestOffline_Deterministic(t *testing.T) {
	gen := Offline{}
	first, err := gen.Generate(context.Background(), "prompt de test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(context.Background(), "prompt de test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text != second.Text {
		t.Error("expected identical responses for identical prompts")
	}
	if !strings.HasPrefix(first.Text, OfflineMarker) {
		t.Errorf("expected response to start with the offline marker, got %q", first.Text[:40])
	}
	if !strings.Contains(first.Text, "prompt de test") {
		t.Error("expected response to echo the prompt")
	}
}

func TestBuildPrompt_DefaultInstructions(t *testing.T) {
	prompt := BuildPrompt("Quel est le coût?", "[Page 1 | Score 0.40]\ncontenu", "")
	if !strings.Contains(prompt, DefaultInstructions) {
		t.Error("expected default instructions")
	}
	if !strings.Contains(prompt, "Contexte pertinent :") {
		t.Error("expected context header")
	}
	if !strings.Contains(prompt, "[Page 1 | Score 0.40]") {
		t.Error("expected context body")
	}
	if !strings.Contains(prompt, "Question : Quel est le coût?") {
		t.Error("expected the question")
	}
}

func TestBuildPrompt_OverrideInstructions(t *testing.T) {
	prompt := BuildPrompt("q", "c", "Réponds en anglais.")
	if !strings.Contains(prompt, "Réponds en anglais.") {
		t.Error("expected override instructions")
	}
	if strings.Contains(prompt, DefaultInstructions) {
		t.Error("did not expect default instructions when overridden")
	}
}

func TestNew_SelectsOfflineWithoutAPIKey(t *testing.T) {
	gen, err := New(context.Background(), "", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(Offline); !ok {
		t.Errorf("expected Offline generator, got %T", gen)
	}
}

func TestNew_MockModelForcesOffline(t *testing.T) {
	gen, err := New(context.Background(), "some-key", ModelMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(Offline); !ok {
		t.Errorf("expected Offline generator for mock model, got %T", gen)
	}
}
