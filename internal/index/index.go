// Package index builds per-project TF-IDF vector spaces over document
// chunks and answers cosine-similarity queries against them.
package index

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// ErrNoDocuments is returned when an index is built over zero documents.
// An empty index is meaningless; failing at construction beats silently
// returning no results later.
var ErrNoDocuments = errors.New("index: at least one document is required")

// Metadata records where an indexed chunk came from.
type Metadata struct {
	Project    string `json:"project"`
	PageNumber int    `json:"page_number"`
	ChunkIndex int    `json:"chunk_index"`
}

// Document is an index-ready unit of text.
type Document struct {
	Content  string
	Metadata Metadata
}

// SearchResult is a search hit with its cosine similarity score.
type SearchResult struct {
	Document *Document
	Score    float64
}

// DocumentIndex holds one project's documents and a TF-IDF vector space
// fitted once over their content. The fit is frozen at construction; the
// index is read-only afterwards.
type DocumentIndex struct {
	docs    []Document
	vocab   map[string]int
	idf     []float64
	vectors []map[int]float64 // L2-normalized sparse tf-idf rows
}

func init() {
	// Section numbers and amounts are meaningful query terms.
	stopwords.DontStripDigits()
}

var termRe = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// tokenize lowercases, strips English stopwords and keeps terms of at
// least two letters or digits.
func tokenize(text string) []string {
	cleaned := stopwords.CleanString(strings.ToLower(text), "en", false)
	return termRe.FindAllString(cleaned, -1)
}

// NewDocumentIndex fits a TF-IDF space over the documents.
func NewDocumentIndex(docs []Document) (*DocumentIndex, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	ix := &DocumentIndex{
		docs:  append([]Document(nil), docs...),
		vocab: make(map[string]int),
	}

	counts := make([]map[int]float64, len(ix.docs))
	var df []int
	for i, doc := range ix.docs {
		row := make(map[int]float64)
		for _, term := range tokenize(doc.Content) {
			id, ok := ix.vocab[term]
			if !ok {
				id = len(ix.vocab)
				ix.vocab[term] = id
				df = append(df, 0)
			}
			if row[id] == 0 {
				df[id]++
			}
			row[id]++
		}
		counts[i] = row
	}

	// Smoothed idf: behaves as if one extra document contained every term,
	// so no term ever gets a zero weight.
	n := float64(len(ix.docs))
	ix.idf = make([]float64, len(df))
	for id, d := range df {
		ix.idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	ix.vectors = make([]map[int]float64, len(counts))
	for i, row := range counts {
		vec := make(map[int]float64, len(row))
		for id, tf := range row {
			vec[id] = tf * ix.idf[id]
		}
		normalize(vec)
		ix.vectors[i] = vec
	}
	return ix, nil
}

// Len returns the number of indexed documents.
func (ix *DocumentIndex) Len() int {
	return len(ix.docs)
}

// Search returns the topK documents most similar to the query, in
// descending score order. Equal scores keep original document order.
// Hits with similarity <= 0 are dropped; a blank query yields no results.
func (ix *DocumentIndex) Search(query string, topK int) []SearchResult {
	if strings.TrimSpace(query) == "" || topK <= 0 {
		return nil
	}

	qv := ix.queryVector(query)

	scores := make([]float64, len(ix.docs))
	order := make([]int, len(ix.docs))
	for i := range ix.docs {
		scores[i] = dot(qv, ix.vectors[i])
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topK > len(order) {
		topK = len(order)
	}
	results := make([]SearchResult, 0, topK)
	for _, i := range order[:topK] {
		if scores[i] <= 0 {
			continue
		}
		results = append(results, SearchResult{Document: &ix.docs[i], Score: scores[i]})
	}
	return results
}

// queryVector projects a query into the fitted space. Terms outside the
// vocabulary are ignored.
func (ix *DocumentIndex) queryVector(query string) map[int]float64 {
	vec := make(map[int]float64)
	for _, term := range tokenize(query) {
		if id, ok := ix.vocab[term]; ok {
			vec[id]++
		}
	}
	for id := range vec {
		vec[id] *= ix.idf[id]
	}
	normalize(vec)
	return vec
}

func normalize(vec map[int]float64) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for id, w := range vec {
		vec[id] = w / norm
	}
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, w := range a {
		sum += w * b[id]
	}
	return sum
}

// ScoreToConfidence maps raw cosine similarity into [0,1]. Cosine scores
// rarely exceed ~0.6 for documents of this size, so a linear mapping would
// squeeze everything into a narrow low band; a logistic curve centred at
// 0.25 spreads typical scores across a usable range. Non-positive scores
// map to exactly 0.
func ScoreToConfidence(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return 1 / (1 + math.Exp(-6*(score-0.25)))
}
