package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unknown is substituted for missing location, species, and source values.
const Unknown = "Unknown"

// Report is one fishing observation. The four core fields drive the
// dashboard; the remainder are carried through from the scrapers as-is.
type Report struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Species  string `json:"species"`
	Source   string `json:"source"`

	Details  string `json:"details,omitempty"`
	Landing  string `json:"landing,omitempty"`
	Boat     string `json:"boat,omitempty"`
	Trip     string `json:"trip,omitempty"`
	Anglers  string `json:"anglers,omitempty"`
	Count    string `json:"count,omitempty"`
	Released string `json:"released,omitempty"`
}

// Document is the JSON payload published by the scraper.
type Document struct {
	Reports     []Report `json:"reports"`
	LastUpdated string   `json:"last_updated"`
	Sources     []string `json:"sources,omitempty"`
}

// UnmarshalJSON decodes the document envelope. The reports array must be
// well formed; last_updated and sources degrade like report fields do.
func (d *Document) UnmarshalJSON(data []byte) error {
	*d = Document{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["reports"]; ok {
		if err := json.Unmarshal(raw, &d.Reports); err != nil {
			return fmt.Errorf("reports: %w", err)
		}
	}
	d.LastUpdated = textField(fields["last_updated"])
	d.Sources = textList(fields["sources"])
	return nil
}

// UnmarshalJSON decodes a report field by field so a single malformed value
// degrades to "missing" instead of failing the whole document.
func (r *Report) UnmarshalJSON(data []byte) error {
	*r = Report{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Non-object entries become an empty report.
		return nil //nolint:nilerr // lenient decoding
	}

	r.Date = textField(fields["date"])
	r.Location = textField(fields["location"])
	r.Species = textField(fields["species"])
	r.Source = textField(fields["source"])
	r.Details = textField(fields["details"])
	r.Landing = textField(fields["landing"])
	r.Boat = textField(fields["boat"])
	r.Trip = textField(fields["trip"])
	r.Anglers = textField(fields["anglers"])
	r.Count = textField(fields["count"])
	r.Released = textField(fields["released"])
	return nil
}

// textField converts a raw JSON value to text. Strings pass through, numbers
// and booleans are formatted, everything else is empty.
func textField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// textList keeps the non-blank string entries of a JSON array. A lone string
// is a one-entry list; any other value yields nil.
func textList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case string:
		items = []any{t}
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// DisplayLocation returns the location or "Unknown" when it is blank.
func (r Report) DisplayLocation() string {
	return orUnknown(r.Location)
}

// DisplaySource returns the source or "Unknown" when it is blank.
func (r Report) DisplaySource() string {
	return orUnknown(r.Source)
}

// DisplaySpecies returns the raw species text or "Unknown" when it is blank.
func (r Report) DisplaySpecies() string {
	return orUnknown(r.Species)
}

// SpeciesNames splits the species field on commas and trims each name.
// Blank names are dropped; a report without species yields nil.
func (r Report) SpeciesNames() []string {
	if strings.TrimSpace(r.Species) == "" {
		return nil
	}
	parts := strings.Split(r.Species, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
