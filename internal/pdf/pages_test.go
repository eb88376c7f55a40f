package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeText_DropsBlankLinesAndTrims(t *testing.T) {
	raw := "  Devis général  \n\n   \nSection 25 — Plomberie\t\n\nTotal : 12 000 $  \n"
	want := "Devis général\nSection 25 — Plomberie\nTotal : 12 000 $"
	if got := NormalizeText(raw); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeText_Empty(t *testing.T) {
	if got := NormalizeText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := NormalizeText("   \n \t \n"); got != "" {
		t.Errorf("expected empty string for whitespace-only input, got %q", got)
	}
}

func TestLoadPDF_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.pdf")
	pages, err := LoadPDF(path)
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected error wrapping os.ErrNotExist, got %v", err)
	}
	if pages != nil {
		t.Errorf("expected nil pages on error, got %d pages", len(pages))
	}
}
