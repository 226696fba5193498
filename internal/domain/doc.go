// Package domain models fishing report data and the aggregations the
// dashboard draws from it.
//
// # Data Source
//
// Reports are produced by an upstream scraper that collects landing and dock
// totals from Southern California fishing sites and writes a single JSON
// document:
//
//	{
//	  "reports": [{"date": "2025-04-10", "location": "Dana Point", "species": "Yellowtail", "source": "Dana Wharf"}],
//	  "last_updated": "2025-04-10 06:00:00",
//	  "sources": ["Dana Wharf"]
//	}
//
// The document is served as a static file or over HTTP. This package never
// fetches it; see the reportfeed adapter.
//
// # Field Conventions
//
// Every report field is optional and is decoded leniently:
//
//	date      ISO-like date string, usually "2006-01-02". Other layouts the
//	          scrapers have produced are accepted by [ParseReportDate].
//	          Unparseable dates sort as the earliest possible date.
//	location  free text; empty means "Unknown".
//	species   free text, possibly "Yellowtail, Rockfish". Each comma-separated
//	          name is trimmed and counted on its own. Empty species is shown as
//	          "Unknown" but never counted.
//	source    provenance; empty means "Unknown".
//
// Numbers or booleans found where text is expected are converted to text, and
// anything else (objects, arrays, null) is treated as missing. A bad field never
// rejects the record.
//
// # Ranking
//
// Location and species rankings order by descending count. Equal counts keep
// the order in which the names were first seen in the input, so the output is
// deterministic for a given document.
//
// Day counts are keyed by the exact date string and ordered by plain string
// comparison, which is chronological only for zero-padded ISO dates.
package domain
