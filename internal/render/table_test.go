package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

func TestTableRows(t *testing.T) {
	reports := []domain.Report{
		{Date: "2025-04-10", Location: "Dana Point", Species: "Yellowtail, Bluefin Tuna", Source: "976-TUNA"},
		{Date: "April 9, 2025", Location: "  ", Species: "Rockfish"},
		{Date: "sometime", Location: "Oceanside"},
		{},
	}

	rows := TableRows(reports)
	require.Len(t, rows, 4)

	assert.Equal(t, "04/10/2025", rows[0].Date)
	assert.Equal(t, "Dana Point", rows[0].Location)
	assert.Equal(t, "976-TUNA", rows[0].Source)
	assert.Equal(t, []SpeciesTag{
		{Name: "Yellowtail", Class: "yellowtail-color"},
		{Name: "Bluefin Tuna", Class: "bluefin-tuna-color"},
	}, rows[0].Species)
	assert.True(t, rows[0].Tagged())
	assert.Equal(t, "Yellowtail, Bluefin Tuna", rows[0].SpeciesText())

	assert.Equal(t, "04/09/2025", rows[1].Date)
	assert.Equal(t, domain.Unknown, rows[1].Location)
	assert.Equal(t, domain.Unknown, rows[1].Source)
	assert.False(t, rows[1].Tagged())
	assert.Equal(t, "Rockfish", rows[1].SpeciesText())

	assert.Equal(t, "sometime", rows[2].Date)
	assert.Empty(t, rows[2].Species)
	assert.Equal(t, domain.Unknown, rows[2].SpeciesText())

	assert.Equal(t, domain.Unknown, rows[3].Date)
}

func TestTableRows_Empty(t *testing.T) {
	assert.Empty(t, TableRows(nil))
}

func TestSpeciesClass(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Yellowtail", "yellowtail-color"},
		{"Bluefin Tuna", "bluefin-tuna-color"},
		{"White  Sea Bass", "white-sea-bass-color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, speciesClass(tt.name))
		})
	}
}
