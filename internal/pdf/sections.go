package pdf

import (
	"regexp"
	"strings"
)

// ContainsSection reports whether the page references "Section <n>". The
// match is case-insensitive and tolerates a missing space; a dotted section
// number also matches its undotted form ("25.1" matches "Section 251").
func (p Page) ContainsSection(section string) bool {
	if sectionPattern(section).MatchString(p.Text) {
		return true
	}
	compact := strings.ReplaceAll(section, ".", "")
	if compact == section {
		return false
	}
	return sectionPattern(compact).MatchString(p.Text)
}

func sectionPattern(section string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\bsection\s*` + regexp.QuoteMeta(section) + `\b`)
}

// FilterPagesBySection keeps only pages referencing the given section.
// An empty section is a no-op returning the pages unchanged.
func FilterPagesBySection(pages []Page, section string) []Page {
	if section == "" {
		return pages
	}
	kept := make([]Page, 0, len(pages))
	for _, p := range pages {
		if p.ContainsSection(section) {
			kept = append(kept, p)
		}
	}
	return kept
}
