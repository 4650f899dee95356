package knowledge

import (
	"regexp"

	"TerraNebular-Backend/internal/domain/model"
)

// labelVariants maps the zone label spellings found in the geometry
// source data to canonical knowledge-base codes. Upstream data mixes
// pre-decorated labels ("R1-Low density residential zone") with plain
// names ("Low Density Residential Zone"), so both forms are listed.
var labelVariants = map[string]string{
	// Residential
	"R1-Low density residential zone":                  "R1",
	"Low Density Residential Zone":                     "R1",
	"R1A-Low density residential densification zone":   "R1A",
	"Low Density Residential Densification Zone":       "R1A",
	"R1B-Rural residential zone":                       "R1B",
	"Rural Residential Zone":                           "R1B",
	"R2-Medium density residential - Improvement zone": "R2",
	"Medium Density Residential - Improvement Zone":    "R2",
	"R3-Medium density residential - Expansion zone":   "R3",
	"Medium Density Residential - Expansion Zone":      "R3",
	"R4-High density residential zone":                 "R4",
	"High Density Residential Zone":                    "R4",

	// Commercial
	"C1-Mixed use zone":        "C1",
	"Mixed Use Zone":           "C1",
	"C3-City commercial zone":  "C3",
	"City Commercial Zone":     "C3",

	// Industrial
	"I1-Light industrial zone":   "I1",
	"Light Industrial Zone":      "I1",
	"I2-General industrial zone": "I2",
	"General Industrial Zone":    "I2",
	"I3-Mining/ Extraction/Quarry": "I3",

	// Public and nature
	"P1-Parks and open spaces zone":         "P1",
	"P2-Sport and Eco tourism zone":         "P2",
	"P3B-Forest zone":                       "P3B",
	"P3C-Steep slopes (> 30%) zone":         "P3C",
	"PA-Public Administration zone":         "PA",
	"PF1-Education and research facilities": "PF1",
	"PF2-Health facilities":                 "PF2",
	"PF3-Religious facilities":              "PF3",
	"PF4-Cultural/ memorial sites":          "PF4",
	"PF5-Cemetery/ crematoria":              "PF5",

	// Agriculture
	"A1-Agriculture zone": "A1",
	"Agriculture Zone":    "A1",

	// Transport and utility
	"T-Transportation zone": "T",
	"Transportation Zone":   "T",
	"U-Utility zone":        "U",
	"Utility Zone":          "U",

	// Wetlands and water
	"W2 - Rehabilitation":            "W2",
	"W3 - Sustainable Exploitation":  "W3",
	"W4 - Conservation":              "W4",
	"W5 - Recreational":              "W5",
	"WR-Waterbody zone":              "WR",
}

// codePrefixPattern extracts a leading short code such as R1, R1A, C3
// or P3C from a raw zone label.
var codePrefixPattern = regexp.MustCompile(`^([A-Z]+[0-9]*[A-Z]?)`)

// Normalize maps a raw zone label to its canonical knowledge-base
// code. Resolution order: exact variant-table match, then leading code
// prefix checked against the knowledge base, then the raw label
// unchanged (Known=false). Unresolvable labels never abort the
// pipeline; regulatory lookups against them simply return nothing.
func Normalize(rawLabel string) model.NormalizedZone {
	if rawLabel == "" {
		return model.NormalizedZone{Code: "", Raw: "", Known: false}
	}

	if code, ok := labelVariants[rawLabel]; ok {
		return model.NormalizedZone{Code: code, Raw: rawLabel, Known: true}
	}

	if m := codePrefixPattern.FindStringSubmatch(rawLabel); m != nil {
		if _, ok := zoningKnowledgeBase[m[1]]; ok {
			return model.NormalizedZone{Code: m[1], Raw: rawLabel, Known: true}
		}
	}

	return model.NormalizedZone{Code: rawLabel, Raw: rawLabel, Known: false}
}
