package chunker

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/devisqa/internal/pdf"
)

// reconstruct concatenates chunks with the shared overlap removed.
func reconstruct(chunks []Chunk, overlap int) string {
	var sb strings.Builder
	for i, c := range chunks {
		runes := []rune(c.Content)
		if i > 0 {
			runes = runes[overlap:]
		}
		sb.WriteString(string(runes))
	}
	return sb.String()
}

func TestSplitPage_InvalidArguments(t *testing.T) {
	page := pdf.Page{Number: 1, Text: "contenu"}

	cases := []struct {
		name    string
		max     int
		overlap int
		want    error
	}{
		{"zero max", 0, 0, ErrChunkSize},
		{"negative max", -5, 0, ErrChunkSize},
		{"negative overlap", 10, -1, ErrNegativeOverlap},
		{"overlap equals max", 10, 10, ErrOverlapTooLarge},
		{"overlap exceeds max", 10, 15, ErrOverlapTooLarge},
	}
	for _, tc := range cases {
		chunks, err := SplitPage(page, tc.max, tc.overlap)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if chunks != nil {
			t.Errorf("%s: expected no chunks, got %d", tc.name, len(chunks))
		}
	}
}

func TestSplitPage_EmptyText(t *testing.T) {
	chunks, err := SplitPage(pdf.Page{Number: 1, Text: ""}, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty page, got %d", len(chunks))
	}
}

func TestSplitPage_ExactLengthSingleChunk(t *testing.T) {
	text := strings.Repeat("a", 100)
	chunks, err := SplitPage(pdf.Page{Number: 3, Text: text}, 100, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != text {
		t.Errorf("expected chunk equal to the whole text")
	}
	if chunks[0].PageNumber != 3 || chunks[0].Index != 0 {
		t.Errorf("expected page 3 index 0, got page %d index %d", chunks[0].PageNumber, chunks[0].Index)
	}
}

func TestSplitPage_TwoChunkBoundary(t *testing.T) {
	// Length 2*max - overlap produces exactly two chunks whose union
	// reconstructs the text.
	const max, overlap = 50, 10
	text := strings.Repeat("x", 2*max-overlap)
	chunks, err := SplitPage(pdf.Page{Number: 1, Text: text}, max, overlap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected exactly 2 chunks, got %d", len(chunks))
	}
	if got := reconstruct(chunks, overlap); got != text {
		t.Errorf("reconstruction mismatch: expected %d chars, got %d", len(text), len(got))
	}
}

func TestSplitPage_ReconstructionWithAccents(t *testing.T) {
	// Multi-byte runes must not be split; reconstruction must be exact.
	text := strings.Repeat("Le coût de l'électricité s'élève à 8 000 $ selon le devis détaillé. ", 30)
	const max, overlap = 97, 13
	chunks, err := SplitPage(pdf.Page{Number: 2, Text: text}, max, overlap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := len([]rune(c.Content)); n > max {
			t.Errorf("chunk %d: %d runes exceeds max %d", i, n, max)
		}
		if c.Index != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, c.Index)
		}
	}
	if got := reconstruct(chunks, overlap); got != text {
		t.Error("reconstruction did not yield the original text")
	}
}

func TestSplitPage_ZeroOverlap(t *testing.T) {
	text := strings.Repeat("d", 250)
	chunks, err := SplitPage(pdf.Page{Number: 1, Text: text}, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if got := reconstruct(chunks, 0); got != text {
		t.Errorf("expected plain concatenation to reconstruct the text, got %d chars", len(got))
	}
}

func TestSplitPage_Deterministic(t *testing.T) {
	page := pdf.Page{Number: 1, Text: strings.Repeat("plomberie et électricité ", 40)}
	first, err := SplitPage(page, 120, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := SplitPage(page, 120, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for identical input")
	}
}

func TestChunkProjectPages_AnnotatesAndRestartsIndexes(t *testing.T) {
	pairs := []pdf.ProjectPage{
		{Project: "Alpha", Page: pdf.Page{Number: 1, Text: strings.Repeat("a", 120)}},
		{Project: "Beta", Page: pdf.Page{Number: 2, Text: strings.Repeat("b", 30)}},
	}
	chunks, err := ChunkProjectPages(pairs, 50, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Page 1: cursor at 0, 40, 80 -> 3 chunks. Page 2: 1 chunk.
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i := 0; i < 3; i++ {
		if chunks[i].Project != "Alpha" || chunks[i].Chunk.PageNumber != 1 || chunks[i].Chunk.Index != i {
			t.Errorf("chunk %d: expected Alpha page 1 index %d, got %s page %d index %d",
				i, i, chunks[i].Project, chunks[i].Chunk.PageNumber, chunks[i].Chunk.Index)
		}
	}
	last := chunks[3]
	if last.Project != "Beta" || last.Chunk.PageNumber != 2 || last.Chunk.Index != 0 {
		t.Errorf("expected Beta page 2 index 0, got %s page %d index %d",
			last.Project, last.Chunk.PageNumber, last.Chunk.Index)
	}
}

func TestChunkProjectPages_PropagatesInvalidConfig(t *testing.T) {
	pairs := []pdf.ProjectPage{
		{Project: "Alpha", Page: pdf.Page{Number: 1, Text: "contenu"}},
	}
	if _, err := ChunkProjectPages(pairs, 10, 10); !errors.Is(err, ErrOverlapTooLarge) {
		t.Errorf("expected ErrOverlapTooLarge, got %v", err)
	}
}
