package render

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	pageTemplate = htmltemplate.Must(htmltemplate.New("dashboard.html.tmpl").
			Funcs(htmltemplate.FuncMap{"millis": millis}).
			ParseFS(templateFS, "templates/dashboard.html.tmpl"))

	summaryTemplate = template.Must(template.New("summary.txt.tmpl").
			Funcs(template.FuncMap{"pad": pad, "join": strings.Join}).
			ParseFS(templateFS, "templates/summary.txt.tmpl"))
)

// Banner is a transient notice shown above the dashboard.
type Banner struct {
	Message   string        `json:"message"`
	Duration  time.Duration `json:"-"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Charts groups the handles for the three dashboard charts.
type Charts struct {
	Activity *Chart `json:"activity"`
	HotSpots *Chart `json:"hot_spots"`
	Species  *Chart `json:"species"`
}

// RenderCharts redraws every chart from the summary, continuing from prev.
func RenderCharts(prev Charts, summary domain.Summary, spots []domain.HotSpot) Charts {
	return Charts{
		Activity: RenderActivity(prev.Activity, summary.Activity, summary.ActivityWindow),
		HotSpots: RenderHotSpots(prev.HotSpots, spots),
		Species:  RenderSpecies(prev.Species, summary.Species),
	}
}

// Page is the complete view model for one dashboard render.
type Page struct {
	LastUpdated  string              `json:"last_updated"`
	TotalReports int                 `json:"total_reports"`
	Sources      []string            `json:"sources"`
	Fallback     bool                `json:"fallback"`
	Banner       *Banner             `json:"banner,omitempty"`
	Rows         []TableRow          `json:"rows"`
	Activity     []domain.DayCount   `json:"activity"`
	HotSpots     []domain.HotSpot    `json:"hot_spots"`
	Species      []domain.GroupCount `json:"species"`
	Charts       Charts              `json:"charts"`
	RenderedAt   time.Time           `json:"rendered_at"`
}

// WritePage writes the dashboard as a standalone HTML document.
func WritePage(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}

// WriteSummary writes a plain-text digest of the dashboard for terminals.
func WriteSummary(w io.Writer, page Page) error {
	if err := summaryTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render dashboard summary: %w", err)
	}
	return nil
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func pad(width int, s string) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
