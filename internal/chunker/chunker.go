package chunker

import (
	"errors"

	"github.com/dgallion1/devisqa/internal/pdf"
)

var (
	// ErrChunkSize is returned when the maximum chunk size is not positive.
	ErrChunkSize = errors.New("chunker: max characters must be positive")
	// ErrNegativeOverlap is returned when the overlap is negative.
	ErrNegativeOverlap = errors.New("chunker: overlap must be non-negative")
	// ErrOverlapTooLarge is returned when the overlap reaches the chunk
	// size. The cursor would stop advancing and emit the same boundary
	// forever, so the configuration is rejected outright.
	ErrOverlapTooLarge = errors.New("chunker: overlap must be smaller than max characters")
)

// Chunk is a bounded, possibly overlapping substring of a page's text, the
// unit indexed for retrieval.
type Chunk struct {
	Content    string
	PageNumber int
	Index      int // 0-based position among the chunks of its page
}

// SplitPage cuts a page into chunks of at most maxCharacters runes, with
// consecutive chunks sharing overlap runes. Working in runes keeps chunk
// boundaries off the middle of UTF-8 sequences, so concatenating the chunks
// with the overlap removed reconstructs the page text exactly.
//
// An empty page yields no chunks and no error. The result is a pure
// function of the input.
func SplitPage(page pdf.Page, maxCharacters, overlap int) ([]Chunk, error) {
	if maxCharacters <= 0 {
		return nil, ErrChunkSize
	}
	if overlap < 0 {
		return nil, ErrNegativeOverlap
	}
	if overlap >= maxCharacters {
		return nil, ErrOverlapTooLarge
	}

	text := []rune(page.Text)
	if len(text) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + maxCharacters
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, Chunk{
			Content:    string(text[start:end]),
			PageNumber: page.Number,
			Index:      len(chunks),
		})
		if end == len(text) {
			break
		}
		start = end - overlap
		if start < 0 {
			start = 0
		}
	}
	return chunks, nil
}

// ProjectChunk ties a chunk to its originating project.
type ProjectChunk struct {
	Project string
	Chunk   Chunk
}

// ChunkProjectPages splits every page, preserving the project annotation
// and page order. Chunk indexes restart at 0 on each page.
func ChunkProjectPages(pairs []pdf.ProjectPage, maxCharacters, overlap int) ([]ProjectChunk, error) {
	var out []ProjectChunk
	for _, pp := range pairs {
		chunks, err := SplitPage(pp.Page, maxCharacters, overlap)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			out = append(out, ProjectChunk{Project: pp.Project, Chunk: c})
		}
	}
	return out, nil
}
