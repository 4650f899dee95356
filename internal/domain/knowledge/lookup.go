package knowledge

import (
	"strings"

	"TerraNebular-Backend/internal/domain/model"
)

// conditionalAuthority is the approval authority attached to every
// conditional use in the regulations.
const conditionalAuthority = "City of Kigali One Stop Centre (OSC)"

// Lookup returns the regulation entry for a zone code or raw label,
// normalizing first. Returns nil for unknown zones.
func Lookup(codeOrLabel string) *model.ZoneRegulation {
	zone := Normalize(codeOrLabel)
	return zoningKnowledgeBase[zone.Code]
}

// Codes returns the set of canonical zone codes, for diagnostics and
// tests.
func Codes() []string {
	codes := make([]string, 0, len(zoningKnowledgeBase))
	for code := range zoningKnowledgeBase {
		codes = append(codes, code)
	}
	return codes
}

// DevelopmentParams flattens the development envelope of a zone for
// the API and the prompt builder. Returns nil for unknown zones.
func DevelopmentParams(codeOrLabel string) *model.DevelopmentParams {
	zone := Lookup(codeOrLabel)
	if zone == nil {
		return nil
	}

	params := &model.DevelopmentParams{
		ZoneName: zone.FullName,
		Code:     zone.Code,
		Article:  zone.Article,
		Table:    zone.Table,
	}
	if zone.Development != nil {
		params.LotSize = zone.Development.LotSize
		params.Coverage = zone.Development.Coverage
		params.FAR = zone.Development.FAR
		params.Density = zone.Development.Density
	}
	if zone.Building != nil {
		params.MaxFloors = zone.Building.MaxFloors
		params.BuildingForm = zone.Building.Form
	}
	return params
}

// ClassifyUse resolves a free-text use query against a zone's use
// sets by case-insensitive substring match. Resolution order is
// permitted, then conditional, then prohibited: a term whose phrasing
// collides across sets resolves to the most permissive status. No
// match across all three sets yields "unspecified"; an unknown zone
// yields "unknown_zone".
func ClassifyUse(codeOrLabel, useQuery string) model.UseClassification {
	zone := Lookup(codeOrLabel)
	if zone == nil || zone.Uses == nil {
		return model.UseClassification{Status: model.UseStatusUnknownZone}
	}

	query := strings.ToLower(useQuery)

	if entry, ok := matchUse(zone.Uses.Permitted, query); ok {
		return model.UseClassification{
			Status:       model.UseStatusPermitted,
			MatchedEntry: entry,
			ZoneName:     zone.FullName,
			Article:      zone.Article,
		}
	}
	if entry, ok := matchUse(zone.Uses.Conditional, query); ok {
		return model.UseClassification{
			Status:       model.UseStatusConditional,
			MatchedEntry: entry,
			ZoneName:     zone.FullName,
			Article:      zone.Article,
			Authority:    conditionalAuthority,
		}
	}
	if entry, ok := matchUse(zone.Uses.Prohibited, query); ok {
		return model.UseClassification{
			Status:       model.UseStatusProhibited,
			MatchedEntry: entry,
			ZoneName:     zone.FullName,
			Article:      zone.Article,
		}
	}

	return model.UseClassification{
		Status:   model.UseStatusUnspecified,
		ZoneName: zone.FullName,
	}
}

func matchUse(entries []string, loweredQuery string) (string, bool) {
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), loweredQuery) {
			return entry, true
		}
	}
	return "", false
}
