package domain

import (
	"fmt"
	"strings"
)

// DocumentIndex is the Issue index for problems with the document envelope
// rather than a single report.
const DocumentIndex = -1

// Issue is a data quality problem found in one report or the document. Issues never stop a
// document from being displayed; they only describe what will be defaulted.
type Issue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Index < 0 {
		return fmt.Sprintf("document: %s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("report %d: %s: %s", i.Index, i.Field, i.Message)
}

// Validate lists the fields the dashboard will have to default or skip.
func Validate(doc Document) []Issue {
	var issues []Issue
	add := func(i int, field, format string, args ...any) {
		issues = append(issues, Issue{Index: i, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(doc.LastUpdated) == "" {
		add(DocumentIndex, "last_updated", "missing, shown as %q", Unknown)
	}

	for i, r := range doc.Reports {
		switch {
		case strings.TrimSpace(r.Date) == "":
			add(i, "date", "missing, sorted last")
		default:
			if _, ok := ParseReportDate(r.Date); !ok {
				add(i, "date", "unparseable %q, sorted last", r.Date)
			}
		}
		if strings.TrimSpace(r.Location) == "" {
			add(i, "location", "missing, counted as %q", Unknown)
		}
		if len(r.SpeciesNames()) == 0 {
			add(i, "species", "missing, not counted")
		}
		if strings.TrimSpace(r.Source) == "" {
			add(i, "source", "missing, shown as %q", Unknown)
		}
	}
	return issues
}
