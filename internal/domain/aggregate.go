package domain

import (
	"sort"
	"strings"
)

// DayCount is the number of reports filed under one date string.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// GroupCount is the number of reports (or species mentions) for one name.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RankRecent returns up to limit reports, most recent date first. Equal dates
// keep their input order and unparseable dates sort last. The input slice is
// never reordered.
func RankRecent(reports []Report, limit int) []Report {
	if len(reports) == 0 || limit <= 0 {
		return []Report{}
	}

	keyed := make([]struct {
		report Report
		date   reportDate
	}, len(reports))
	for i, r := range reports {
		keyed[i].report = r
		keyed[i].date = parseSortable(r.Date)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].date.after(keyed[j].date)
	})

	n := min(limit, len(keyed))
	out := make([]Report, n)
	for i := range n {
		out[i] = keyed[i].report
	}
	return out
}

// CountByDay counts reports per exact date string and returns the last
// windowDays distinct dates in ascending string order. Reports with a blank
// date are left out.
func CountByDay(reports []Report, windowDays int) []DayCount {
	if windowDays <= 0 {
		return []DayCount{}
	}

	counts := make(map[string]int)
	for _, r := range reports {
		if strings.TrimSpace(r.Date) == "" {
			continue
		}
		counts[r.Date]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if len(dates) > windowDays {
		dates = dates[len(dates)-windowDays:]
	}

	out := make([]DayCount, len(dates))
	for i, d := range dates {
		out[i] = DayCount{Date: d, Count: counts[d]}
	}
	return out
}

// CountByLocation returns the topN locations by report count. Blank
// locations are counted as "Unknown".
func CountByLocation(reports []Report, topN int) []GroupCount {
	t := newTally()
	for _, r := range reports {
		t.add(r.DisplayLocation())
	}
	return t.top(topN)
}

// CountBySpecies returns the topN species by mention count. A report listing
// several comma-separated species counts once for each of them; reports
// without species are skipped.
func CountBySpecies(reports []Report, topN int) []GroupCount {
	t := newTally()
	for _, r := range reports {
		for _, name := range r.SpeciesNames() {
			t.add(name)
		}
	}
	return t.top(topN)
}

// DistinctSources lists report sources in first-seen order, with blank
// sources reported as "Unknown".
func DistinctSources(reports []Report) []string {
	t := newTally()
	for _, r := range reports {
		t.add(r.DisplaySource())
	}
	return t.order
}

// tally counts names while remembering the order they were first seen in,
// which is the tie-break for equal counts.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int), order: []string{}}
}

func (t *tally) add(name string) {
	if _, seen := t.counts[name]; !seen {
		t.order = append(t.order, name)
	}
	t.counts[name]++
}

func (t *tally) top(n int) []GroupCount {
	if n <= 0 {
		return []GroupCount{}
	}

	groups := make([]GroupCount, len(t.order))
	for i, name := range t.order {
		groups[i] = GroupCount{Name: name, Count: t.counts[name]}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}
