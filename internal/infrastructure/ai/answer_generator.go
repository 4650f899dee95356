package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
)

// languageConfig carries the per-language prompt instruction and the
// localized footer labels appended to every answer.
type languageConfig struct {
	Name        string
	Instruction string
	Location    string
	Contact     string
	Source      string
}

var languages = map[string]languageConfig{
	"en": {
		Name:        "English",
		Instruction: "Respond in English.",
		Location:    "Location",
		Contact:     "City of Kigali Planning",
		Source:      "Source",
	},
	"rw": {
		Name:        "Kinyarwanda",
		Instruction: "Subiza mu Kinyarwanda gusa. Koresha amagambo yoroshye yumvikana.",
		Location:    "Aho hantu",
		Contact:     "Umujyi wa Kigali - Imiyoborere",
		Source:      "Ibyavuye",
	},
	"fr": {
		Name:        "Français",
		Instruction: "Répondez entièrement en français.",
		Location:    "Emplacement",
		Contact:     "Planification de la Ville de Kigali",
		Source:      "Source",
	},
}

func languageFor(code string) languageConfig {
	if cfg, ok := languages[code]; ok {
		return cfg
	}
	return languages["en"]
}

const systemPrompt = `You are TerraNebular, an authoritative spatial intelligence assistant for Kigali, Rwanda.

YOUR CORE PRINCIPLES:
1. AUTHORITATIVE: Every answer cites specific Articles, Tables, and numbers from Kigali City Zoning Regulations (August 2020)
2. ACTIONABLE: Citizens should not need to visit government offices after reading your response
3. SPECIFIC: Never say "check with authorities" when you have the regulation in context
4. MULTILINGUAL: Respond fluently in English, Kinyarwanda, or French as requested

You have been provided with the complete, authoritative zoning regulations. Use them to give definitive answers.`

// generalProvisions applies to every zone and is always included in
// the regulatory context.
const generalProvisions = `APPLICABLE GENERAL PROVISIONS (Article 4):

HOME OCCUPATION (Article 4.10):
• Allowed in all residential zones
• Maximum 25% of floor area for business use
• Maximum 1 non-resident worker
• Permitted: Professional offices, IT consultancy, teaching (not schools)
• Prohibited: Car trading, commercial schools, courier businesses

INCREMENTAL DEVELOPMENT (Article 4.6):
• Allowed to match financial capacity
• Requires conceptual final design with expected GFA
• Must include tentative phasing plan
• Building must not appear incomplete during phases

ACCESSORY RESIDENTIAL UNITS (Article 4.11):
• Allowed in R1, R1A, R2, R3 zones
• Maximum 3 units per dwelling
• Minimum 9m² single, 15m² double occupancy
• Requires separate entrance, kitchen, bathroom

PARKING REQUIREMENTS (Article 6.7):
• Residential: 1 space per unit (apartments <100m²)
• Office: 1 space per 50m² GFA
• Retail: 1 space per 30m² GFA
• Restaurant: 1 space per 15m² dining area`

// claudeAnswerRepository implements AnswerGenerationRepository on top
// of the Claude messages API.
type claudeAnswerRepository struct {
	client *ClaudeClient
}

func NewClaudeAnswerRepository(client *ClaudeClient) repository.AnswerGenerationRepository {
	return &claudeAnswerRepository{client: client}
}

// GenerateAnswer builds the authoritative prompt from the assembled
// regulatory context, calls the collaborator and appends the localized
// footer. Errors propagate so the caller can degrade to the offline
// fallback answer.
func (g *claudeAnswerRepository) GenerateAnswer(ctx context.Context, question string, spatialData *model.LocationSpatialData, language string) (string, error) {
	prompt := buildSpatialPrompt(question, spatialData, language)

	log.Printf("🤖 Generating AI answer (zone: %s, language: %s)", spatialData.ZoneData.Feature.ZoneName, language)

	answer, err := g.client.GenerateContent(ctx, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("claude API call failed: %w", err)
	}

	return answer + answerFooter(spatialData, language), nil
}

// buildSpatialPrompt assembles the full regulatory context for one
// question. spatialData.ZoneData must be non-nil; the no-coverage path
// is handled before answer generation.
func buildSpatialPrompt(question string, spatialData *model.LocationSpatialData, language string) string {
	zoneData := spatialData.ZoneData
	langCfg := languageFor(language)

	var b strings.Builder

	fmt.Fprintf(&b, "You are TerraNebular, an AUTHORITATIVE spatial intelligence assistant for Kigali, Rwanda.\n\n")
	fmt.Fprintf(&b, "YOUR MISSION: \"Zero Trips, Zero Paper\"\n")
	fmt.Fprintf(&b, "Provide definitive answers so citizens don't need to visit government offices. Every response must be legally accurate and citable.\n\n")
	fmt.Fprintf(&b, "LANGUAGE INSTRUCTION: %s\n\n", langCfg.Instruction)

	fmt.Fprintf(&b, "LOCATION CONTEXT\n")
	fmt.Fprintf(&b, "• Coordinates: %.6f°, %.6f°\n", spatialData.Location.Lat, spatialData.Location.Lng)
	fmt.Fprintf(&b, "• Zone Name: %s\n", zoneData.Feature.ZoneName)
	if zoneData.Feature.Phase != nil {
		fmt.Fprintf(&b, "• Phase: %s\n", *zoneData.Feature.Phase)
	}
	if len(spatialData.NearbyFeatures) > 0 {
		nearby := make([]string, 0, 3)
		for i, f := range spatialData.NearbyFeatures {
			if i >= 3 {
				break
			}
			nearby = append(nearby, fmt.Sprintf("%s (%.0fm)", f.Feature.ZoneName, f.DistanceMeters))
		}
		fmt.Fprintf(&b, "• Nearby Zones: %s\n", strings.Join(nearby, ", "))
	}
	b.WriteString("\n")

	writeRegulatoryContext(&b, zoneData)

	b.WriteString("\n")
	b.WriteString(generalProvisions)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "CITIZEN'S QUESTION\n\"%s\"\n\n", question)

	b.WriteString(`RESPONSE REQUIREMENTS (CRITICAL - FOLLOW EXACTLY)

1. DIRECT ANSWER FIRST
   - Start with YES, NO, or CONDITIONAL in first sentence
   - Give the specific answer immediately
   - Never be vague - if allowed, say "PERMITTED"; if needs approval, say "CONDITIONAL"

2. CITE YOUR SOURCES
   - Reference specific Articles and Tables (e.g., "Per Article 6.1, Table 6.4...")
   - Quote exact numbers (FAR, coverage %, floor limits)

3. PROVIDE SPECIFIC NUMBERS
   - Instead of "check with authorities" → give the actual regulation
   - Maximum floors: State the exact limit (e.g., "G+2" or "G+4")

4. NEXT STEPS
   - If PERMITTED: List what documents are needed for permit application
   - If CONDITIONAL: Explain what OSC will evaluate
   - If PROHIBITED: Suggest alternatives or variance process

5. FORMAT
   - Maximum 250 words
   - No markdown formatting (no ##, **, etc.)
   - Use simple bullet points (•) for lists
   - End with legal source citation

NOW RESPOND TO THE CITIZEN'S QUESTION:`)

	return b.String()
}

func writeRegulatoryContext(b *strings.Builder, zoneData *model.ResolvedZone) {
	reg := zoneData.Regulation
	if reg == nil {
		fmt.Fprintf(b, "ZONE: %s\n", zoneData.Feature.ZoneName)
		fmt.Fprintf(b, "Note: Detailed regulations for this specific zone should be verified with City of Kigali OSC.\n")
		return
	}

	fmt.Fprintf(b, "AUTHORITATIVE ZONING REGULATIONS (Source: Kigali City Zoning Regulations, Effective August 28, 2020)\n\n")
	fmt.Fprintf(b, "ZONE: %s (%s)\n", reg.FullName, reg.Code)
	fmt.Fprintf(b, "LEGAL REFERENCE: %s, %s\n\n", reg.Article, reg.Table)
	fmt.Fprintf(b, "OFFICIAL DESCRIPTION:\n%s\n\n", reg.Description)

	fmt.Fprintf(b, "PERMITTED USES (No additional approval required):\n%s\n\n", bulletList(usesOrDefault(reg, func(u *model.ZoneUses) []string { return u.Permitted }), "• Check with OSC"))
	fmt.Fprintf(b, "CONDITIONAL USES (Requires OSC approval):\n%s\n\n", bulletList(usesOrDefault(reg, func(u *model.ZoneUses) []string { return u.Conditional }), "• None specified"))
	fmt.Fprintf(b, "PROHIBITED USES (Not allowed):\n%s\n\n", bulletList(usesOrDefault(reg, func(u *model.ZoneUses) []string { return u.Prohibited }), "• None specified"))

	fmt.Fprintf(b, "DEVELOPMENT PARAMETERS:\n")
	dev := zoneData.Development
	if dev != nil {
		fmt.Fprintf(b, "• Maximum Lot Size: %s\n", lotSizeLabel(dev.LotSize))
		if dev.Coverage != nil {
			fmt.Fprintf(b, "• Maximum Building Coverage: %s\n", orDefault(dev.Coverage.MaxBuilding, "Per regulations"))
			fmt.Fprintf(b, "• Minimum Landscaping: %s\n", orDefault(dev.Coverage.MinLandscaping, "Per regulations"))
		}
		if dev.FAR != nil {
			fmt.Fprintf(b, "• Maximum FAR (Floor Area Ratio): %g\n", dev.FAR.Max)
		}
		if dev.Density != nil {
			fmt.Fprintf(b, "• Residential Density (Single Use): %s\n", orDefault(dev.Density.SingleUse, "Per regulations"))
			fmt.Fprintf(b, "• Residential Density (Mixed Use): %s\n", orDefault(dev.Density.MixedUse, "Per regulations"))
		}
		fmt.Fprintf(b, "• Maximum Building Height: %s\n", orDefault(dev.MaxFloors, "Per regulations"))
		if len(dev.BuildingForm) > 0 {
			fmt.Fprintf(b, "• Allowed Building Forms: %s\n", strings.Join(dev.BuildingForm, ", "))
		}
	} else {
		fmt.Fprintf(b, "• Contact OSC for specific parameters\n")
	}

	if len(reg.DevelopmentStrategy) > 0 {
		fmt.Fprintf(b, "\nDEVELOPMENT STRATEGY OPTIONS:\n%s\n", bulletList(reg.DevelopmentStrategy, ""))
	}
	if reg.Signage != nil {
		fmt.Fprintf(b, "\nSIGNAGE REGULATIONS:\n• %s\n• Maximum Size: %s\n",
			orDefault(reg.Signage.Permitted, "Per regulations"),
			orDefault(reg.Signage.MaxSize, "Per regulations"))
	}
}

// answerFooter is appended to every generated answer so the response
// stays citable on its own.
func answerFooter(spatialData *model.LocationSpatialData, language string) string {
	langCfg := languageFor(language)
	zoneData := spatialData.ZoneData

	source := "Kigali City Zoning Regulations (August 2020)"
	if zoneData.Regulation != nil {
		source = fmt.Sprintf("%s, %s, %s", source, zoneData.Regulation.Article, zoneData.Regulation.Table)
	}

	return fmt.Sprintf(`

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
📍 %s: %.4f°, %.4f°
📋 %s: %s
📞 %s: +250 788 000 000
🌐 Kubaka: https://kubaka.gov.rw/ | CoK: kigalicity.gov.rw`,
		langCfg.Location, spatialData.Location.Lat, spatialData.Location.Lng,
		langCfg.Source, source,
		langCfg.Contact)
}

// FallbackAnswer still provides the authoritative zone parameters when
// the collaborator fails or times out.
func FallbackAnswer(question string, zoneData *model.ResolvedZone, language string) string {
	var zoneInfo string
	if zoneData != nil && zoneData.Regulation != nil && zoneData.Development != nil {
		reg := zoneData.Regulation
		dev := zoneData.Development
		coverage, landscaping := "Per regulations", "Per regulations"
		if dev.Coverage != nil {
			coverage = orDefault(dev.Coverage.MaxBuilding, coverage)
			landscaping = orDefault(dev.Coverage.MinLandscaping, landscaping)
		}
		far := "Per regulations"
		if dev.FAR != nil {
			far = fmt.Sprintf("%g", dev.FAR.Max)
		}
		permitted := "Contact OSC"
		if reg.Uses != nil && len(reg.Uses.Permitted) > 0 {
			head := reg.Uses.Permitted
			if len(head) > 3 {
				head = head[:3]
			}
			permitted = strings.Join(head, ", ")
		}
		zoneInfo = fmt.Sprintf(`

Zone: %s (%s)
Reference: %s, %s

Key Parameters:
• Max Building Coverage: %s
• Max FAR: %s
• Max Floors: %s
• Min Landscaping: %s

Permitted Uses: %s`,
			reg.FullName, reg.Code, reg.Article, reg.Table,
			coverage, far, orDefault(dev.MaxFloors, "Per regulations"), landscaping, permitted)
	}

	switch language {
	case "rw":
		return fmt.Sprintf(`TerraNebular ntishobora gusubiza neza ubu, ariko dore amakuru y'amategeko aho uri:
%s

Kubaza ku "%s", hamagara:
📞 Umujyi wa Kigali OSC: +250 788 000 000
🌐 Uruhushya kuri interineti: https://kubaka.gov.rw/`, zoneInfo, question)
	case "fr":
		return fmt.Sprintf(`TerraNebular ne peut pas générer une réponse détaillée pour le moment, mais voici les informations réglementaires pour votre emplacement:
%s

Pour votre question sur "%s", contactez:
📞 Ville de Kigali OSC: +250 788 000 000
🌐 Permis en ligne: https://kubaka.gov.rw/`, zoneInfo, question)
	default:
		return fmt.Sprintf(`TerraNebular is temporarily unable to generate a detailed response, but here is the regulatory information for your location:
%s

For your specific question about "%s", please contact:
📞 City of Kigali OSC: +250 788 000 000
🌐 Online permits: https://kubaka.gov.rw/
📋 Source: Kigali City Zoning Regulations (August 2020)`, zoneInfo, question)
	}
}

// NoCoverageAnswer is returned when the coordinate falls outside every
// mapped zone; the AI collaborator is never called on this path.
func NoCoverageAnswer(lat, lng float64) string {
	return fmt.Sprintf(`No zoning data found for this location.

This coordinate appears to be outside the mapped zoning areas of Kigali. TerraNebular's spatial intelligence currently covers official zoning designations within Kigali city boundaries.

Please try:
• Selecting a location within Kigali city center
• Using the "Use My Location" button if you're in Kigali
• Contacting City of Kigali directly for areas outside the master plan

📞 City of Kigali Planning: +250 788 000 000
🌐 More info: kigalicity.gov.rw

📍 Searched Location: %.4f°, %.4f°`, lat, lng)
}

func bulletList(entries []string, fallback string) string {
	if len(entries) == 0 {
		return fallback
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = "• " + e
	}
	return strings.Join(lines, "\n")
}

func usesOrDefault(reg *model.ZoneRegulation, pick func(*model.ZoneUses) []string) []string {
	if reg.Uses == nil {
		return nil
	}
	return pick(reg.Uses)
}

func lotSizeLabel(ls *model.LotSize) string {
	if ls == nil {
		return "As per UPC"
	}
	if ls.Max != "" {
		return ls.Max
	}
	if ls.Min != "" {
		return ls.Min
	}
	return "As per UPC"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
