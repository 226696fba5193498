package render

import (
	"fmt"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	echartsrender "github.com/go-echarts/go-echarts/v2/render"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

// Kind identifies which dashboard panel a chart belongs to.
type Kind string

const (
	KindActivity Kind = "activity"
	KindHotSpots Kind = "hot_spots"
	KindSpecies  Kind = "species"
)

var defaultChartIDs = map[Kind]string{
	KindActivity: "activity-chart",
	KindHotSpots: "locations-chart",
	KindSpecies:  "species-chart",
}

// Palette is shared by the hot spot and species charts. Groups beyond its
// length wrap around.
var Palette = []string{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8",
	"#82ca9d", "#ffc658", "#8dd1e1", "#a4de6c", "#d0ed57",
}

const chartHeight = "320px"

// Chart is a handle to one rendered chart. A new handle is produced for every
// render; the previous one is passed back in so the panel keeps its DOM ID and
// the revision advances.
type Chart struct {
	ID       string        `json:"id"`
	Kind     Kind          `json:"kind"`
	Revision int           `json:"revision"`
	Snippet  template.HTML `json:"-"`
}

// next derives the identity of the replacement for prev.
func next(prev *Chart, kind Kind) Chart {
	if prev == nil || prev.ID == "" {
		return Chart{ID: defaultChartIDs[kind], Kind: kind, Revision: 1}
	}
	return Chart{ID: prev.ID, Kind: kind, Revision: prev.Revision + 1}
}

// RenderActivity draws the per-day report counts as a line chart. The title
// names the configured window, not the number of dates that had reports.
func RenderActivity(prev *Chart, days []domain.DayCount, windowDays int) *Chart {
	c := next(prev, KindActivity)

	labels := make([]string, len(days))
	points := make([]opts.LineData, len(days))
	for i, d := range days {
		labels[i] = formatShortDate(d.Date)
		points[i] = opts.LineData{Name: d.Date, Value: d.Count}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: c.ID, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Fishing Activity (Last %d Days)", windowDays)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: boolPtr(false)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Reports"}),
	)
	line.SetXAxis(labels).AddSeries("Reports", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: Palette[0]}),
	)

	c.Snippet = renderSnippet(line)
	return &c
}

// RenderHotSpots draws the top locations as a pie chart.
func RenderHotSpots(prev *Chart, spots []domain.HotSpot) *Chart {
	c := next(prev, KindHotSpots)

	slices := make([]opts.PieData, len(spots))
	for i, s := range spots {
		slices[i] = opts.PieData{
			Name:      s.Name,
			Value:     s.Count,
			ItemStyle: &opts.ItemStyle{Color: paletteColor(i)},
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: c.ID, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Top Fishing Locations"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: boolPtr(true), Bottom: "0"}),
	)
	pie.AddSeries("Reports", slices)

	c.Snippet = renderSnippet(pie)
	return &c
}

// RenderSpecies draws the top species as a bar chart.
func RenderSpecies(prev *Chart, species []domain.GroupCount) *Chart {
	c := next(prev, KindSpecies)

	names := make([]string, len(species))
	bars := make([]opts.BarData, len(species))
	for i, s := range species {
		names[i] = s.Name
		bars[i] = opts.BarData{
			Name:      s.Name,
			Value:     s.Count,
			ItemStyle: &opts.ItemStyle{Color: paletteColor(i)},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: c.ID, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Top Species Caught"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: boolPtr(false)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Mentions"}),
	)
	bar.SetXAxis(names).AddSeries("Mentions", bars)

	c.Snippet = renderSnippet(bar)
	return &c
}

func paletteColor(i int) string {
	return Palette[i%len(Palette)]
}

type snippetRenderer interface {
	RenderSnippet() echartsrender.ChartSnippet
}

func renderSnippet(c snippetRenderer) template.HTML {
	s := c.RenderSnippet()
	return template.HTML(s.Element + "\n" + s.Script) //nolint:gosec // generated by go-echarts from escaped option JSON
}

func boolPtr(b bool) *bool { return &b }
