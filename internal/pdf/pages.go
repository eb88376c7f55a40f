package pdf

import (
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Page is a single PDF page with its extracted, normalized text.
type Page struct {
	Number int    // 1-based physical page number
	Text   string
}

// LoadPDF extracts every page of the file in physical order.
//
// Page text is normalized: blank lines are dropped and the remaining lines
// trimmed. A page whose text cannot be extracted yields empty text rather
// than failing the whole document.
func LoadPDF(path string) ([]Page, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pdf file not found: %s: %w", path, err)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		var text string
		page := reader.Page(i)
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		pages = append(pages, Page{Number: i, Text: NormalizeText(text)})
	}
	return pages, nil
}

// NormalizeText discards blank lines, trims the rest and rejoins with
// newlines, so downstream matching is not thrown off by extraction noise.
func NormalizeText(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
