package pdf

import (
	"regexp"
	"strings"
)

// DefaultProjectLabel groups pages that appear before the first heading.
const DefaultProjectLabel = "Général"

// Headings look like "Projet: Tour Nord" or "Project - Phase 2", at the
// start of a line, case-insensitive.
var projectHeadingRe = regexp.MustCompile(`(?im)^(?:projet|project)\s*[:\-]\s*(.+)$`)

// ProjectGroup is an ordered run of pages sharing a project heading.
type ProjectGroup struct {
	Label string
	Pages []Page
}

// GroupPagesByProject partitions pages by project heading. Every page lands
// in exactly one group and keeps its original order; groups appear in
// first-seen order with the default label always present (and first), even
// when empty. A page with headings switches the current project from that
// page onward; headless pages stay with the current project.
func GroupPagesByProject(pages []Page, defaultLabel string) []ProjectGroup {
	if defaultLabel == "" {
		defaultLabel = DefaultProjectLabel
	}

	groups := []ProjectGroup{{Label: defaultLabel}}
	pos := map[string]int{defaultLabel: 0}
	current := defaultLabel

	for _, page := range pages {
		matches := projectHeadingRe.FindAllStringSubmatch(page.Text, -1)
		if len(matches) > 0 {
			// The last heading on the page wins, so a footer or appendix
			// reference does not override the actual project name.
			label := strings.TrimSpace(matches[len(matches)-1][1])
			if label != "" {
				current = label
				if _, ok := pos[current]; !ok {
					pos[current] = len(groups)
					groups = append(groups, ProjectGroup{Label: current})
				}
			}
		}
		i := pos[current]
		groups[i].Pages = append(groups[i].Pages, page)
	}
	return groups
}

// ProjectPage pairs a page with its owning project label.
type ProjectPage struct {
	Project string
	Page    Page
}

// ProjectPagePairs flattens groups into (project, page) pairs, group by
// group, for downstream chunking.
func ProjectPagePairs(groups []ProjectGroup) []ProjectPage {
	var pairs []ProjectPage
	for _, g := range groups {
		for _, p := range g.Pages {
			pairs = append(pairs, ProjectPage{Project: g.Label, Page: p})
		}
	}
	return pairs
}
