package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArrayRoundTrip(t *testing.T) {
	input := "name;category\nSpot A;[\"Nature\",\"Adventure\"]\n"

	records, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Spot A", records[0]["name"])
	assert.Equal(t, []string{"Nature", "Adventure"}, records[0]["category"])
}

func TestParseEmptyCellIsNil(t *testing.T) {
	input := "name;municipality;rating\nSpot A;;\n"

	records, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Nil(t, records[0]["municipality"])
	assert.Nil(t, records[0]["rating"])
}

func TestParseMalformedArrayKeepsLiteral(t *testing.T) {
	input := "name;category\nSpot A;[Nature, Adventure\n"

	records, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "[Nature, Adventure", records[0]["category"])
}

func TestParseRequiresHeader(t *testing.T) {
	_, err := Parse(strings.NewReader(""), nil)
	assert.Error(t, err)
}

func TestToSpotNumericFallbacks(t *testing.T) {
	rec := Record{
		"name":      "Mayon Skyline",
		"rating":    "not-a-number",
		"latitude":  "13.2577",
		"longitude": "",
	}

	spot := toSpot(rec)
	assert.Equal(t, "Mayon Skyline", spot.Name)
	assert.Zero(t, spot.Rating)
	require.NotNil(t, spot.Latitude)
	assert.InDelta(t, 13.2577, *spot.Latitude, 1e-9)
	assert.Nil(t, spot.Longitude)
}

func TestToEventParsesDate(t *testing.T) {
	rec := Record{"name": "Magayon Festival", "date": "2026-04-01"}
	row := toEvent(rec)
	require.NotNil(t, row.Date)
	assert.Equal(t, "2026-04-01", row.Date.Format("2006-01-02"))

	bad := toEvent(Record{"name": "x", "date": "April 1"})
	assert.Nil(t, bad.Date)
}
