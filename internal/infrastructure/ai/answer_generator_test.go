package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
)

func testSpatialData(t *testing.T) *model.LocationSpatialData {
	t.Helper()
	zone := knowledge.Normalize("C1-Mixed use zone")
	require.True(t, zone.Known)

	phase := "Phase 1"
	return &model.LocationSpatialData{
		Location: model.LatLng{Lat: -1.9536, Lng: 30.0606},
		ZoneData: &model.ResolvedZone{
			SpatialQueryResult: model.SpatialQueryResult{
				Feature: model.ZoningFeature{
					ObjectID: 42,
					ZoneName: "C1-Mixed use zone",
					Phase:    &phase,
				},
				Source: "exact_match",
			},
			Zone:        zone,
			Regulation:  knowledge.Lookup(zone.Code),
			Development: knowledge.DevelopmentParams(zone.Code),
		},
		NearbyFeatures: []model.SpatialQueryResult{
			{
				Feature:        model.ZoningFeature{ObjectID: 43, ZoneName: "R2-Medium density residential - Improvement zone"},
				DistanceMeters: 350,
				Source:         "nearby",
			},
		},
	}
}

func TestBuildSpatialPrompt_CarriesRegulatoryContext(t *testing.T) {
	data := testSpatialData(t)
	prompt := buildSpatialPrompt("Can I open a restaurant here?", data, "en")

	assert.Contains(t, prompt, "Can I open a restaurant here?")
	assert.Contains(t, prompt, "Mixed Use Zone")
	assert.Contains(t, prompt, "Article 6.2")
	assert.Contains(t, prompt, "Table 6.7")
	assert.Contains(t, prompt, "Commercial / Retail")
	assert.Contains(t, prompt, "Petrol stations")
	assert.Contains(t, prompt, "Industrial Uses")
	assert.Contains(t, prompt, "Maximum FAR (Floor Area Ratio): 1.6")
	assert.Contains(t, prompt, "-1.953600")
	assert.Contains(t, prompt, "Phase 1")
	assert.Contains(t, prompt, "R2-Medium density residential - Improvement zone (350m)")
	// General provisions always travel with the zone context.
	assert.Contains(t, prompt, "HOME OCCUPATION (Article 4.10)")
}

func TestBuildSpatialPrompt_LanguageInstruction(t *testing.T) {
	data := testSpatialData(t)

	assert.Contains(t, buildSpatialPrompt("q", data, "rw"), "Kinyarwanda")
	assert.Contains(t, buildSpatialPrompt("q", data, "fr"), "français")
	// Unknown languages fall back to English.
	assert.Contains(t, buildSpatialPrompt("q", data, "xx"), "Respond in English.")
}

func TestBuildSpatialPrompt_UnknownZoneDegrades(t *testing.T) {
	data := testSpatialData(t)
	data.ZoneData.Regulation = nil
	data.ZoneData.Development = nil

	prompt := buildSpatialPrompt("q", data, "en")
	assert.Contains(t, prompt, "verified with City of Kigali OSC")
	assert.NotContains(t, prompt, "AUTHORITATIVE ZONING REGULATIONS")
}

func TestAnswerFooter_CitesSource(t *testing.T) {
	data := testSpatialData(t)

	footer := answerFooter(data, "en")
	assert.Contains(t, footer, "Kigali City Zoning Regulations (August 2020), Article 6.2, Table 6.7")
	assert.Contains(t, footer, "-1.9536")
	assert.Contains(t, footer, "Location")

	footerRw := answerFooter(data, "rw")
	assert.Contains(t, footerRw, "Aho hantu")
}

func TestFallbackAnswer_CarriesZoneParameters(t *testing.T) {
	data := testSpatialData(t)

	answer := FallbackAnswer("Can I build offices?", data.ZoneData, "en")
	assert.Contains(t, answer, "Mixed Use Zone (C1)")
	assert.Contains(t, answer, "Max FAR: 1.6")
	assert.Contains(t, answer, "60%")
	assert.Contains(t, answer, "Can I build offices?")
	assert.Contains(t, answer, "kubaka.gov.rw")
}

func TestFallbackAnswer_Languages(t *testing.T) {
	data := testSpatialData(t)

	assert.Contains(t, FallbackAnswer("q", data.ZoneData, "rw"), "Umujyi wa Kigali")
	assert.Contains(t, FallbackAnswer("q", data.ZoneData, "fr"), "Ville de Kigali")
}

func TestFallbackAnswer_NoRegulation(t *testing.T) {
	answer := FallbackAnswer("q", nil, "en")
	assert.NotContains(t, answer, "Key Parameters")
	assert.True(t, strings.Contains(answer, "City of Kigali OSC"))
}

func TestNoCoverageAnswer(t *testing.T) {
	answer := NoCoverageAnswer(-2.6, 29.2)
	assert.Contains(t, answer, "No zoning data found")
	assert.Contains(t, answer, "-2.6000")
	assert.Contains(t, answer, "29.2000")
}
