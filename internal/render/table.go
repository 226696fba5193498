package render

import (
	"strings"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

// TableRow is one line of the recent reports table, ready for display.
type TableRow struct {
	Date     string       `json:"date"`
	Location string       `json:"location"`
	Species  []SpeciesTag `json:"species"`
	Source   string       `json:"source"`
}

// SpeciesTag is a single species name with its CSS color class.
type SpeciesTag struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// SpeciesText joins the species names, or returns "Unknown" when there are none.
func (r TableRow) SpeciesText() string {
	if len(r.Species) == 0 {
		return domain.Unknown
	}
	names := make([]string, len(r.Species))
	for i, s := range r.Species {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// Tagged reports whether the row lists more than one species.
func (r TableRow) Tagged() bool {
	return len(r.Species) > 1
}

// TableRows converts ranked reports to display rows, keeping their order.
func TableRows(reports []domain.Report) []TableRow {
	rows := make([]TableRow, len(reports))
	for i, r := range reports {
		names := r.SpeciesNames()
		tags := make([]SpeciesTag, len(names))
		for j, name := range names {
			tags[j] = SpeciesTag{Name: name, Class: speciesClass(name)}
		}
		rows[i] = TableRow{
			Date:     formatTableDate(r.Date),
			Location: r.DisplayLocation(),
			Species:  tags,
			Source:   r.DisplaySource(),
		}
	}
	return rows
}

func speciesClass(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-") + "-color"
}

func formatTableDate(raw string) string {
	if t, ok := domain.ParseReportDate(raw); ok {
		return t.Format("01/02/2006")
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Unknown
	}
	return raw
}

func formatShortDate(raw string) string {
	if t, ok := domain.ParseReportDate(raw); ok {
		return t.Format("Jan 2")
	}
	return raw
}
