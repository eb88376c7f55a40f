// Package agent orchestrates retrieval-augmented answering: per project,
// retrieve the best chunks for a question, hand them to the generation
// backend and package the result with confidence and source attributions.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgallion1/devisqa/internal/chunker"
	"github.com/dgallion1/devisqa/internal/gemini"
	"github.com/dgallion1/devisqa/internal/index"
	"github.com/dgallion1/devisqa/internal/pdf"
)

// NoInformationAnswer is emitted when retrieval finds nothing for a project.
// No backend call is made in that case.
const NoInformationAnswer = "Aucune information pertinente trouvée dans ce projet."

const (
	DefaultChunkSize = 1100
	DefaultOverlap   = 200
	DefaultTopK      = 4

	// excerptLimit caps source excerpts, in runes.
	excerptLimit = 300
)

// Options configure agent construction. Overlap is taken as given, zero
// included: non-overlapping chunks are a legitimate configuration, so the
// DefaultOverlap constant is applied by the CLI and server config rather
// than here.
type Options struct {
	Section      string // optional section filter, e.g. "25"; empty = no filter
	ChunkSize    int    // max chunk length in characters; 0 = DefaultChunkSize
	Overlap      int    // overlap between consecutive chunks; 0 = no overlap
	DefaultLabel string // label for pages before the first heading; "" = pdf.DefaultProjectLabel
	Generator    gemini.Generator
}

func (o *Options) fill() {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Generator == nil {
		o.Generator = gemini.Offline{}
	}
}

// SourceAttribution captures the origin of a piece of evidence.
type SourceAttribution struct {
	PageNumber int     `json:"page_number"`
	Score      float64 `json:"score"`
	Excerpt    string  `json:"excerpt"`
}

// Answer is the result generated for a single project.
type Answer struct {
	Project    string              `json:"project"`
	Answer     string              `json:"answer"`
	Confidence float64             `json:"confidence"`
	Sources    []SourceAttribution `json:"sources"`
}

type projectIndex struct {
	label string
	index *index.DocumentIndex
}

// Agent holds one frozen DocumentIndex per project, in first-seen order,
// plus the generation backend. Projects are answered independently; there
// is no shared state between them.
type Agent struct {
	projects []projectIndex
	gen      gemini.Generator
}

// FromPDF builds an agent from a PDF file: load pages, apply the optional
// section filter, group by project, then chunk and index each project.
func FromPDF(path string, opts Options) (*Agent, error) {
	pages, err := pdf.LoadPDF(path)
	if err != nil {
		return nil, err
	}
	pages = pdf.FilterPagesBySection(pages, opts.Section)
	groups := pdf.GroupPagesByProject(pages, opts.DefaultLabel)
	return FromPages(groups, opts)
}

// FromPages builds an agent from already grouped pages. Projects that
// produce no chunks (such as an empty default group) get no index and
// therefore no answer.
func FromPages(groups []pdf.ProjectGroup, opts Options) (*Agent, error) {
	opts.fill()

	chunks, err := chunker.ChunkProjectPages(pdf.ProjectPagePairs(groups), opts.ChunkSize, opts.Overlap)
	if err != nil {
		return nil, err
	}

	byProject := make(map[string][]index.Document)
	var order []string
	for _, pc := range chunks {
		if _, ok := byProject[pc.Project]; !ok {
			order = append(order, pc.Project)
		}
		byProject[pc.Project] = append(byProject[pc.Project], index.Document{
			Content: pc.Chunk.Content,
			Metadata: index.Metadata{
				Project:    pc.Project,
				PageNumber: pc.Chunk.PageNumber,
				ChunkIndex: pc.Chunk.Index,
			},
		})
	}

	a := &Agent{gen: opts.Generator}
	for _, label := range order {
		ix, err := index.NewDocumentIndex(byProject[label])
		if err != nil {
			return nil, fmt.Errorf("index project %q: %w", label, err)
		}
		a.projects = append(a.projects, projectIndex{label: label, index: ix})
	}
	return a, nil
}

// Projects returns the project labels in index construction order.
func (a *Agent) Projects() []string {
	labels := make([]string, len(a.projects))
	for i, p := range a.projects {
		labels[i] = p.label
	}
	return labels
}

// Answer answers the question once per project, in construction order.
// A topK of zero or less falls back to DefaultTopK. A project with no
// retrieval hits gets the fixed no-information answer with confidence 0
// and no sources. A backend failure aborts the call.
func (a *Agent) Answer(ctx context.Context, question string, topK int, instructions string) ([]Answer, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	answers := make([]Answer, 0, len(a.projects))
	for _, p := range a.projects {
		results := p.index.Search(question, topK)
		if len(results) == 0 {
			answers = append(answers, Answer{
				Project:    p.label,
				Answer:     NoInformationAnswer,
				Confidence: 0,
				Sources:    []SourceAttribution{},
			})
			continue
		}

		prompt := gemini.BuildPrompt(question, buildContext(results), instructions)
		resp, err := a.gen.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generate answer for project %q: %w", p.label, err)
		}

		// A single strong hit should not be diluted by weaker ones, so the
		// confidence is the maximum over the retrieved results.
		var confidence float64
		sources := make([]SourceAttribution, 0, len(results))
		for _, r := range results {
			if c := index.ScoreToConfidence(r.Score); c > confidence {
				confidence = c
			}
			sources = append(sources, SourceAttribution{
				PageNumber: r.Document.Metadata.PageNumber,
				Score:      r.Score,
				Excerpt:    excerpt(r.Document.Content),
			})
		}

		answers = append(answers, Answer{
			Project:    p.label,
			Answer:     strings.TrimSpace(resp.Text),
			Confidence: confidence,
			Sources:    sources,
		})
	}
	return answers, nil
}

// buildContext concatenates the retrieved chunks in result order, each
// labelled with its page number and score.
func buildContext(results []index.SearchResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("[Page %d | Score %.2f]\n%s",
			r.Document.Metadata.PageNumber, r.Score, strings.TrimSpace(r.Document.Content)))
	}
	return strings.Join(blocks, "\n\n")
}

// excerpt keeps the first 300 runes of a chunk, trimmed.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLimit {
		runes = runes[:excerptLimit]
	}
	return strings.TrimSpace(string(runes))
}
