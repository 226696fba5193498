package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDanaPoint = "Dana Point"
	testNewport   = "Newport"
)

func TestRankRecent(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		reports := []Report{
			{Date: "2025-04-08", Location: "A"},
			{Date: "2025-04-10", Location: "B"},
			{Date: "2025-04-09", Location: "C"},
		}

		got := RankRecent(reports, 10)

		require.Len(t, got, 3)
		assert.Equal(t, []string{"B", "C", "A"}, locations(got))
	})

	t.Run("equal dates keep input order", func(t *testing.T) {
		reports := []Report{
			{Date: "2025-04-09", Location: "first"},
			{Date: "2025-04-10", Location: "second"},
			{Date: "2025-04-09", Location: "third"},
			{Date: "2025-04-10", Location: "fourth"},
		}

		got := RankRecent(reports, 10)

		assert.Equal(t, []string{"second", "fourth", "first", "third"}, locations(got))
	})

	t.Run("unparseable dates sort last", func(t *testing.T) {
		reports := []Report{
			{Date: "not a date", Location: "bad"},
			{Date: "", Location: "empty"},
			{Date: "2020-01-01", Location: "old"},
		}

		got := RankRecent(reports, 10)

		assert.Equal(t, []string{"old", "bad", "empty"}, locations(got))
	})

	t.Run("mixed layouts compare by parsed date", func(t *testing.T) {
		reports := []Report{
			{Date: "April 9, 2025", Location: "long"},
			{Date: "04/11/2025", Location: "us"},
			{Date: "2025-04-10 06:00:00", Location: "timestamp"},
		}

		got := RankRecent(reports, 10)

		assert.Equal(t, []string{"us", "timestamp", "long"}, locations(got))
	})

	t.Run("limit truncates", func(t *testing.T) {
		reports := makeReports(30)

		got := RankRecent(reports, 20)

		assert.Len(t, got, 20)
	})

	t.Run("never exceeds limit or input length", func(t *testing.T) {
		for _, n := range []int{0, 1, 5, 25} {
			for _, limit := range []int{-1, 0, 1, 5, 20, 100} {
				got := RankRecent(makeReports(n), limit)
				assert.LessOrEqual(t, len(got), max(limit, 0), "n=%d limit=%d", n, limit)
				assert.LessOrEqual(t, len(got), n, "n=%d limit=%d", n, limit)
			}
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		reports := []Report{
			{Date: "2025-04-08", Location: "A"},
			{Date: "2025-04-10", Location: "B"},
		}
		before := append([]Report(nil), reports...)

		_ = RankRecent(reports, 10)

		assert.Equal(t, before, reports)
	})

	t.Run("empty input", func(t *testing.T) {
		got := RankRecent(nil, 20)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCountByDay(t *testing.T) {
	t.Run("groups by exact date string ascending", func(t *testing.T) {
		reports := []Report{
			{Date: "2025-04-10"},
			{Date: "2025-04-09"},
			{Date: "2025-04-10"},
			{Date: "2025-04-08"},
		}

		got := CountByDay(reports, 14)

		assert.Equal(t, []DayCount{
			{Date: "2025-04-08", Count: 1},
			{Date: "2025-04-09", Count: 1},
			{Date: "2025-04-10", Count: 2},
		}, got)
	})

	t.Run("keeps only the last window of dates", func(t *testing.T) {
		var reports []Report
		for day := 1; day <= 20; day++ {
			reports = append(reports, Report{Date: fmt.Sprintf("2025-04-%02d", day)})
		}

		got := CountByDay(reports, 14)

		require.Len(t, got, 14)
		assert.Equal(t, "2025-04-07", got[0].Date)
		assert.Equal(t, "2025-04-20", got[13].Date)
	})

	t.Run("string ordering for non-ISO dates", func(t *testing.T) {
		reports := []Report{
			{Date: "2025-4-9"},
			{Date: "2025-4-10"},
		}

		got := CountByDay(reports, 14)

		// "2025-4-10" < "2025-4-9" as strings.
		assert.Equal(t, "2025-4-10", got[0].Date)
		assert.Equal(t, "2025-4-9", got[1].Date)
	})

	t.Run("counts sum to reports in returned dates", func(t *testing.T) {
		reports := makeReports(40)

		got := CountByDay(reports, 5)

		inWindow := make(map[string]bool)
		sum := 0
		for _, d := range got {
			inWindow[d.Date] = true
			sum += d.Count
		}
		expected := 0
		for _, r := range reports {
			if inWindow[r.Date] {
				expected++
			}
		}
		assert.Equal(t, expected, sum)
	})

	t.Run("blank dates are not a bucket", func(t *testing.T) {
		reports := []Report{
			{Date: ""},
			{Date: "2025-04-10"},
			{Date: "   "},
			{},
		}

		got := CountByDay(reports, 14)

		assert.Equal(t, []DayCount{{Date: "2025-04-10", Count: 1}}, got)
	})

	t.Run("non-positive window", func(t *testing.T) {
		assert.Empty(t, CountByDay(makeReports(3), 0))
	})
}

func TestCountByLocation(t *testing.T) {
	t.Run("descending by count", func(t *testing.T) {
		reports := []Report{
			{Location: testNewport},
			{Location: testDanaPoint},
			{Location: testDanaPoint},
			{Location: "Oceanside"},
			{Location: testDanaPoint},
			{Location: testNewport},
		}

		got := CountByLocation(reports, 5)

		assert.Equal(t, []GroupCount{
			{Name: testDanaPoint, Count: 3},
			{Name: testNewport, Count: 2},
			{Name: "Oceanside", Count: 1},
		}, got)
	})

	t.Run("missing location is Unknown", func(t *testing.T) {
		reports := []Report{{Location: ""}, {Location: "   "}, {Location: testNewport}}

		got := CountByLocation(reports, 5)

		assert.Equal(t, GroupCount{Name: Unknown, Count: 2}, got[0])
	})

	t.Run("ties break on first seen", func(t *testing.T) {
		reports := []Report{
			{Location: "C"}, {Location: "A"}, {Location: "B"},
			{Location: "B"}, {Location: "A"}, {Location: "C"},
		}

		got := CountByLocation(reports, 2)

		assert.Equal(t, []GroupCount{{Name: "C", Count: 2}, {Name: "A", Count: 2}}, got)
	})

	t.Run("counts sum to total", func(t *testing.T) {
		reports := makeReports(37)

		got := CountByLocation(reports, 1000)

		assert.Equal(t, len(reports), sumCounts(got))
	})
}

func TestCountBySpecies(t *testing.T) {
	t.Run("comma separated species counted independently", func(t *testing.T) {
		reports := []Report{{Species: "Yellowtail, Rockfish"}}

		got := CountBySpecies(reports, 6)

		assert.Equal(t, []GroupCount{
			{Name: "Yellowtail", Count: 1},
			{Name: "Rockfish", Count: 1},
		}, got)
	})

	t.Run("skips reports without species", func(t *testing.T) {
		reports := []Report{{Species: ""}, {Species: "  "}, {Species: "Halibut"}}

		got := CountBySpecies(reports, 6)

		assert.Equal(t, []GroupCount{{Name: "Halibut", Count: 1}}, got)
	})

	t.Run("trims and merges names", func(t *testing.T) {
		reports := []Report{
			{Species: " Yellowtail "},
			{Species: "Bass,Yellowtail"},
			{Species: "Yellowtail, ,Bass,"},
		}

		got := CountBySpecies(reports, 6)

		assert.Equal(t, []GroupCount{
			{Name: "Yellowtail", Count: 3},
			{Name: "Bass", Count: 2},
		}, got)
	})

	t.Run("top N", func(t *testing.T) {
		reports := []Report{
			{Species: "A, B, C, D, E, F, G"},
			{Species: "G"},
		}

		got := CountBySpecies(reports, 6)

		require.Len(t, got, 6)
		assert.Equal(t, GroupCount{Name: "G", Count: 2}, got[0])
		assert.Equal(t, "A", got[1].Name)
	})

	t.Run("counts sum to split entries", func(t *testing.T) {
		reports := []Report{
			{Species: "Yellowtail, Rockfish"},
			{Species: "Rockfish"},
			{Species: ""},
			{Species: "Dorado, Bluefin Tuna, Yellowtail"},
		}

		got := CountBySpecies(reports, 1000)

		assert.Equal(t, 6, sumCounts(got))
	})
}

func TestAggregation_EndToEnd(t *testing.T) {
	reports := []Report{
		{Date: "2025-04-10", Location: testDanaPoint, Species: "Yellowtail"},
		{Date: "2025-04-09", Location: testDanaPoint, Species: "Rockfish"},
	}

	assert.Equal(t, []GroupCount{{Name: testDanaPoint, Count: 2}}, CountByLocation(reports, 5))

	recent := RankRecent(reports, 1)
	require.Len(t, recent, 1)
	assert.Equal(t, reports[0], recent[0])
}

func TestDistinctSources(t *testing.T) {
	reports := []Report{
		{Source: "Dana Wharf"},
		{Source: ""},
		{Source: "H2O Sportz"},
		{Source: "Dana Wharf"},
	}

	assert.Equal(t, []string{"Dana Wharf", Unknown, "H2O Sportz"}, DistinctSources(reports))
}

func locations(reports []Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.Location
	}
	return out
}

func sumCounts(groups []GroupCount) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

func makeReports(n int) []Report {
	names := []string{testDanaPoint, testNewport, "Oceanside", "San Diego", "Huntington", "Long Beach", ""}
	reports := make([]Report, n)
	for i := range reports {
		reports[i] = Report{
			Date:     fmt.Sprintf("2025-03-%02d", i%28+1),
			Location: names[i%len(names)],
			Species:  "Yellowtail",
		}
	}
	return reports
}
