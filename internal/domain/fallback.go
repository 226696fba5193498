package domain

// FallbackLastUpdated marks a document built from the sample dataset.
const FallbackLastUpdated = "SAMPLE DATA"

// FallbackDocument returns the fixed sample dataset shown when the live
// report document cannot be loaded. Each call returns a fresh copy.
func FallbackDocument() Document {
	return Document{
		Reports: []Report{
			{Date: "2025-04-10", Location: "Dana Point", Species: "Yellowtail", Source: "Sample Data"},
			{Date: "2025-04-10", Location: "Newport", Species: "Rockfish", Source: "Sample Data"},
			{Date: "2025-04-09", Location: "Oceanside", Species: "Dorado", Source: "Sample Data"},
			{Date: "2025-04-09", Location: "San Diego", Species: "Bluefin Tuna", Source: "Sample Data"},
			{Date: "2025-04-08", Location: "Huntington", Species: "Halibut", Source: "Sample Data"},
		},
		LastUpdated: FallbackLastUpdated,
	}
}
