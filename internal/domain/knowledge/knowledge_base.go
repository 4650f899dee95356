// Package knowledge holds the static Kigali zoning knowledge base and
// the label normalizer. Everything here is pure, immutable after init
// and safe for unsynchronized concurrent reads.
//
// Source: Kigali City Zoning Regulations (Effective August 28, 2020),
// 2019 Kigali Master Plan Review - Zoning Regulations FINAL.
package knowledge

import "TerraNebular-Backend/internal/domain/model"

// Metadata identifies the regulatory document backing every entry.
var Metadata = struct {
	DocumentTitle string
	EffectiveDate string
	Authority     string
	LegalBasis    string
}{
	DocumentTitle: "Kigali City Zoning Regulations",
	EffectiveDate: "August 28, 2020",
	Authority:     "City of Kigali City Council",
	LegalBasis:    "Rwanda Urban Planning Code",
}

var zoningKnowledgeBase = map[string]*model.ZoneRegulation{

	// Residential zones

	"R1": {
		Code:        "R1",
		FullName:    "Low Density Residential Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.1",
		Description: "Intended for villa and bungalow typology and complementary public facilities. R1 Zones are limited in the City of Kigali to existing consolidated areas with the objective of limiting low-density urban development and encouraging compact development.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Single family houses",
				"Home Occupation",
			},
			Conditional: []string{
				"Uses as per R1A regulations",
				"Apartments exceeding G+2",
				"Semi-Detached",
				"Multifamily Houses",
				"Restaurants, Guest houses, B&B, Hotels (including ancillary commercial uses)",
				"Public facilities when suggested by Public Facilities Overlay (Section 7.1)",
				"Commercial Retail Facilities when allowed by O-C2 Overlay (Section 6.2.2)",
				"Accessory Residential Units",
			},
			Prohibited: []string{
				"Industrial uses",
				"Major infrastructure",
			},
			Ancillary: []string{
				"Car parking garage",
				"Store and Service rooms",
				"Guard House",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				Max:  "500 m²",
				Note: "As per Urban Planning Code (UPC). Plots less than 300 m² shall follow R1A regulations. Existing developments on plots larger than 500 m² can retain their use.",
			},
			Coverage: &model.Coverage{MaxBuilding: "40%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 0.5},
			Density: &model.Density{
				SingleUse: "10-15 Du/Ha",
				MixedUse:  "7-10 Du/Ha (when building is partially occupied by other uses as per O-C2 overlay)",
			},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+1+P (Penthouse)",
			AncillaryMaxFloors: "G",
			Roof: &model.ZoneRoof{
				MaxPitch:     "30%",
				Restrictions: "No reflective metal roofing allowed. Roof colours should blend with surrounding landscape.",
			},
			Form: []string{"Detached", "Semi Detached"},
		},
		DevelopmentStrategy: []string{
			"Individual plot development",
			"Land subdivision",
			"Estate (No gated estates allowed on developments of more than 1 ha)",
		},
		Signage: &model.ZoneSignage{
			Permitted: "One sign located on the fencing wall along the front setback",
			MaxSize:   "35cm height x 35cm width",
		},
	},

	"R1A": {
		Code:        "R1A",
		FullName:    "Low Density Residential Densification Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.2",
		Description: "A residential zone for semidetached houses, single family townhouses, multifamily houses, and low-rise developments. Intended to offer low and medium-rise housing and complementary commercial and public facilities. Lot sizes are smaller than R1 to promote more efficient use of lands in prime areas.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Single family houses (all types)",
				"Semi-detached houses",
				"Multifamily Houses",
				"Townhouses",
				"Row houses",
				"Home Occupation",
				"Accessory Residential Units",
			},
			Conditional: []string{
				"Restaurants, Hotels, Guest houses, B&B",
				"Public facilities as per Public Facilities overlay (Section 7.1)",
				"Commercial retail, office facilities when allowed by O-C2 Overlay (Section 6.2.2)",
			},
			Prohibited: []string{
				"Residential exceeding G+2",
				"Industrial uses",
				"Major infrastructure",
			},
			Ancillary: []string{
				"Car parking garage",
				"Store and Service rooms",
				"Guard House",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize:  &model.LotSize{Max: "300 m²"},
			Coverage: &model.Coverage{MaxBuilding: "50%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.0},
			Density:  &model.Density{SingleUse: "20-30 Du/Ha", MixedUse: "15-20 Du/Ha"},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+2",
			AncillaryMaxFloors: "G",
			Roof: &model.ZoneRoof{
				MaxPitch:     "30%",
				Restrictions: "No reflective metal roofing allowed. Roof colours should blend with surrounding landscape.",
			},
			Form: []string{"Detached", "Semi Detached", "Attached"},
		},
		DevelopmentStrategy: []string{
			"Individual plot development",
			"Land Pooling (see Land Assembly Overlay Plan Section 7.3)",
			"Land Subdivision",
			"Estate Development (No gated estates allowed on developments of more than 1 ha)",
		},
	},

	"R1B": {
		Code:        "R1B",
		FullName:    "Rural Residential Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.3",
		Description: "A residential zone offering compact developments in rural areas. Intended to offer low-rise, medium-density housing as part of the farming community. Purpose is to create sustainable and compact residential settlement in rural areas, limiting encroachment towards fertile agricultural land.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Single family Houses",
				"Row housing",
				"Multifamily residential (4 in 1, 8 in 1, etc as per IDP model Villages)",
				"Low-rise apartments",
				"Home Occupation",
				"Accessory Residential Units",
			},
			Conditional: []string{
				"Restaurants",
				"Hotels/Guest houses",
				"Public facilities when allowed by Public Facilities Overlay",
				"Commercial retail when allowed by O-C2 Overlay",
				"Micro Enterprise",
			},
			Prohibited: []string{
				"Industrial uses",
				"Major infrastructure",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				Max:  "150 m² (for single family)",
				Note: "N/A for Multifamily houses or Apartment development including additional rooms for rental, provided it meets minimum density requirement",
			},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.0},
			Density:  &model.Density{SingleUse: "40-60 Du/Ha", MixedUse: "30-50 Du/Ha"},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+2 (One extra floor may be allowed due to topographic conditions)",
			AncillaryMaxFloors: "G",
			Form:               []string{"Attached for rowhouses", "Attached/semi-detached/detached Apartments and Multifamily houses"},
		},
	},

	"R2": {
		Code:        "R2",
		FullName:    "Medium Density Residential - Improvement Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.4",
		Description: "Established for urban improvement zones (existing informal settlements). Offers opportunities for multi-family rental development or mixed-use options without extensive relocation. Regularization of tenure is expected and prioritized.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Single family Residential",
				"Rowhouses",
				"Low-rise apartments",
				"Multifamily Houses",
				"Home Occupation",
				"Accessory Residential Units",
			},
			Conditional: []string{
				"Restaurants",
				"Hotels/Guest houses (including ancillary uses)",
				"Public facilities when allowed by Public Facilities Overlay (Section 7.1)",
				"Commercial retail, office when allowed by O-C2 Overlay (Section 6.2.2)",
				"Micro Enterprise",
			},
			Prohibited: []string{
				"Industrial uses",
				"Major infrastructure",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				Max:         "100 m² for incremental Single-Family Housing in new Subdivision Plans",
				RowHousing:  "150 m² for Row housing",
				MultiFamily: "N/A (provided minimum density is met)",
			},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.2},
			Density:  &model.Density{SingleUse: "50-90 Du/Ha", MixedUse: "40-70 Du/Ha"},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+2 (One extra floor may be allowed due to topographic conditions, to achieve required density or technical/economic feasibility)",
			AncillaryMaxFloors: "G",
			Roof:               &model.ZoneRoof{MaxPitch: "30%", Restrictions: "No reflective metal roofing allowed"},
			Form:               []string{"Attached for rowhouses", "Attached/semi-detached/detached Apartments and Multifamily houses"},
		},
	},

	"R3": {
		Code:        "R3",
		FullName:    "Medium Density Residential - Expansion Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.5",
		Description: "Established to allow intensification and redevelopment of peri-urban and greenfield areas. Expected to stimulate development of low-cost incremental housing. Purpose is to facilitate housing for low-income segment by providing low-rise, higher-intensity developments in greenfield sites.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Single family Residential",
				"Rowhouses",
				"Low-rise apartments",
				"Multifamily Houses",
				"Accessory Residential units",
				"Home Occupation",
			},
			Conditional: []string{
				"Restaurants",
				"Hotels/Guest houses (including ancillary uses)",
				"Public facilities when allowed by Public Facilities Overlay (Section 7.1)",
				"Commercial retail, office when allowed by O-C2 Overlay (Section 6.2.2)",
				"Micro Enterprise",
			},
			Prohibited: []string{
				"Industrial uses",
				"Major infrastructure",
				"Any development that does not meet affordability criteria suggested in these regulations",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				SingleFamily: "Max 100 m² for incremental Single-Family Housing in new Subdivision Plans",
				RowHousing:   "Max 150 m² for Row housing",
				MultiFamily:  "N/A (provided minimum density is met)",
			},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.2},
			Density:  &model.Density{SingleUse: "50-90 Du/Ha", MixedUse: "40-70 Du/Ha"},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+2 (One extra floor may be allowed due to topographic conditions, to achieve required density or technical/economic feasibility)",
			AncillaryMaxFloors: "G",
			Form:               []string{"Attached for rowhouses", "Attached/semi-detached/detached Apartments and Multifamily houses"},
		},
		DevelopmentStrategy: []string{
			"Individual private development",
			"Land Pooling (see Land Assembly Overlay Plan Section 7.3)",
			"Sites and Services",
			"Larger plots owned by individuals shall be developed following minimum required densities in an optic of incremental development",
		},
	},

	"R4": {
		Code:        "R4",
		FullName:    "High Density Residential Zone",
		Article:     "Article 6.1",
		Table:       "Table 6.6",
		Description: "Established to create well planned medium-rise housing and apartment complexes with integrated commercial and public facilities, open spaces. Minimum lot sizes are higher than R3 to facilitate creation of a well-planned high-density residential mixed-use neighbourhood with green character.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"High density residential",
				"Home Occupation",
				"R2 typologies (in case plot size is less than 750 m²)",
			},
			Conditional: []string{
				"Restaurants",
				"Hotels (including ancillary uses), Guest house, B&B",
				"Public facilities when allowed by Public Facilities Overlay (Section 7.1)",
				"Commercial retail, office, Micro-Enterprise when allowed by O-C2 Overlay (Section 6.2.2)",
				"Micro Enterprise",
			},
			Prohibited: []string{
				"Industrial uses",
				"Major infrastructure",
			},
			Ancillary: []string{
				"Car parking garage",
				"Guard house",
				"Store and services rooms",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				Min:  "750 m²",
				Note: "Plots smaller than 750 m² can be developed following R2 regulations. Plots larger than 750 m² can be developed following R2 regulations if plot subdivision allows.",
			},
			Coverage: &model.Coverage{MaxBuilding: "50%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.8},
			Density:  &model.Density{SingleUse: "80-120 Du/Ha", MixedUse: "60-80 Du/Ha"},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+4 (apartments) maximum. One extra floor may be allowed due to topographic conditions, to achieve required density or technical/economic feasibility.",
			AncillaryMaxFloors: "G",
			FloorToFloorHeight: "4m maximum",
			Form:               []string{"Attached Buildings", "Detached Buildings", "R2 typologies for plots less than 750 m²"},
		},
		DevelopmentStrategy: []string{
			"Individual development (provided all parcels in the block have proper minimum accessibility)",
			"Land Pooling (see Land Assembly Overlay Plan Section 7.3)",
			"Plots smaller than 750 m² can be developed following R2 or R3 regulations",
			"Plots larger than 750 m² shall not be subdivided if result produces plots smaller than 750 m²",
		},
	},

	// Commercial and mixed-use zones

	"C1": {
		Code:        "C1",
		FullName:    "Mixed Use Zone",
		Article:     "Article 6.2",
		Table:       "Table 6.7",
		Description: "Established to create high flexibility in the mix of uses and ensure continuity in ground level commercial activities as well as provide employment opportunities in other floors such as offices or accommodation. Offers spaces for goods and services as well as living quarters and rental units to create a vibrant mixed-use commercial zone.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Commercial / Retail",
				"Restaurants and Recreational activities",
				"Office use above the 1st floor",
				"Co-working spaces",
				"Residential",
				"Home Occupation",
			},
			Conditional: []string{
				"Public Facilities (see Public Facilities overlay)",
				"Transportation Terminals",
				"Hotels",
				"Petrol stations",
				"Garages and Car Repair - Grade E as per RBS and CoK requirements",
				"Car Wash Services",
			},
			Prohibited: []string{
				"Large scale commercial complex",
				"Industrial Uses",
				"Major Infrastructure Installations",
			},
			Ancillary: []string{
				"Electrical substation (ESS)",
				"Refuse area",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{
				Min:       "500 m²",
				Exception: "Plots with size below 500 m² in existing consolidated commercial nodes can implement construction, renewal and refurbishment works provided size is not less than 200 m², following OSC approval",
			},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "10%"},
			FAR:      &model.FloorAreaMax{Max: 1.6},
		},
		Building: &model.ZoneBuilding{
			MaxFloors:          "G+4 maximum. Additional floors may be authorised by OSC along BRT, Wetland Front, and Green Connectors as per UD Plan.",
			AncillaryMaxFloors: "G",
			Form:               []string{"Attached Buildings", "Detached Buildings"},
		},
		Signage: &model.ZoneSignage{
			Permitted:  "One sign permitted on the tower; wall signs up to 15% of building face (9 m² max)",
			MaxSize:    "Wall 9 m², window 2.5 m², awning 2.5 m² with 2.5m ground clearance",
			Prohibited: []string{"Roof mounted signs", "String lights, flashing, excessively bright lights", "Offsite signage"},
		},
	},

	"C3": {
		Code:        "C3",
		FullName:    "City Commercial Zone",
		Article:     "Article 6.2",
		Table:       "Table 6.9",
		Description: "Established for high intensity commercial areas with offices, retail, and potentially mixed residential uses. Targets prime commercial locations in the city center and along major corridors.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Commercial / Retail",
				"Office",
				"Hotels",
				"Restaurants and Recreational activities",
				"Co-working spaces",
			},
			Conditional: []string{
				"Residential (above 2nd floor)",
				"Public Facilities",
				"Transportation Terminals",
				"Petrol stations",
				"Garages and Car Repair",
			},
			Prohibited: []string{
				"Industrial Uses",
				"Major Infrastructure Installations",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize:  &model.LotSize{Min: "1000 m²"},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "10%"},
			FAR:      &model.FloorAreaMax{Max: 2.5},
		},
		Building: &model.ZoneBuilding{
			MaxFloors: "G+8 maximum. Additional floors may be authorised along BRT corridors.",
			Form:      []string{"Attached Buildings", "Detached Buildings", "Semi-Detached Buildings"},
		},
	},

	// Industrial zones

	"I1": {
		Code:        "I1",
		FullName:    "Light Industrial Zone",
		Article:     "Article 6.5",
		Table:       "Table 6.16",
		Description: "For light manufacturing, assembly, warehousing and distribution activities that have minimal environmental impacts.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Light manufacturing",
				"Assembly operations",
				"Warehousing",
				"Distribution centers",
				"Research and development facilities",
			},
			Conditional: []string{
				"Office use (accessory)",
				"Retail showrooms (accessory)",
				"Commercial services",
			},
			Prohibited: []string{
				"Residential uses",
				"Heavy industrial uses",
				"Polluting industries",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize:  &model.LotSize{Min: "1000 m²"},
			Coverage: &model.Coverage{MaxBuilding: "60%", MinLandscaping: "15%"},
			FAR:      &model.FloorAreaMax{Max: 1.2},
		},
		Building: &model.ZoneBuilding{
			MaxFloors: "G+2",
			Form:      []string{"Detached Buildings", "Attached Buildings"},
		},
	},

	"I2": {
		Code:        "I2",
		FullName:    "General Industrial Zone",
		Article:     "Article 6.5",
		Table:       "Table 6.17",
		Description: "For general manufacturing and industrial activities that may have moderate environmental impacts requiring buffering from residential areas.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"General manufacturing",
				"Processing industries",
				"Heavy warehousing",
				"Industrial services",
			},
			Conditional: []string{
				"Hazardous materials storage (with proper permits)",
				"Waste processing",
			},
			Prohibited: []string{
				"Residential uses",
				"Hotels",
				"Schools and hospitals",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize:  &model.LotSize{Min: "2000 m²"},
			Coverage: &model.Coverage{MaxBuilding: "50%", MinLandscaping: "20%"},
			FAR:      &model.FloorAreaMax{Max: 1.0},
		},
		Building: &model.ZoneBuilding{MaxFloors: "G+2"},
	},

	"I3": {
		Code:        "I3",
		FullName:    "Mining and Quarrying Industrial Zone",
		Article:     "Article 6.5",
		Table:       "Table 6.18",
		Description: "For mining, extraction and quarrying activities with strict environmental controls.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Mining operations",
				"Quarrying",
				"Extraction activities",
				"Related processing",
			},
			Prohibited: []string{
				"Residential uses",
				"Commercial retail",
				"Public facilities",
			},
		},
	},

	// Nature and open space zones

	"P1": {
		Code:        "P1",
		FullName:    "Parks and Open Spaces Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.19",
		Description: "For parks, recreation areas and public open spaces to serve the community's recreational needs.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Public parks",
				"Playgrounds",
				"Gardens",
				"Walking/cycling trails",
				"Outdoor recreation",
			},
			Conditional: []string{
				"Small kiosks/refreshment stands",
				"Sports facilities",
				"Community centers",
			},
			Prohibited: []string{
				"Residential uses",
				"Commercial development",
				"Industrial uses",
			},
		},
		Development: &model.ZoneDevelopment{
			Coverage: &model.Coverage{MaxBuilding: "5%", MinGreenSpace: "80%"},
		},
	},

	"P2": {
		Code:        "P2",
		FullName:    "Sports and Eco-Tourism Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.20",
		Description: "For sports facilities, eco-tourism activities and related recreational uses.",
	},

	"P3B": {
		Code:        "P3-B",
		FullName:    "Forest Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.22",
		Description: "Protected forest areas with strict development controls for conservation purposes.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Forest conservation",
				"Nature trails",
				"Environmental education",
			},
			Prohibited: []string{
				"Building construction",
				"Residential development",
				"Commercial activities",
			},
		},
	},

	"P3C": {
		Code:        "P3-C",
		FullName:    "Steep Slopes Zone (>30%)",
		Article:     "Article 6.6",
		Table:       "Table 6.23",
		Description: "Areas with slopes exceeding 30% where development is restricted for safety and environmental reasons.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Reforestation",
				"Slope stabilization",
				"Nature conservation",
			},
			Prohibited: []string{
				"Building construction",
				"Any development that may destabilize slopes",
			},
		},
		Restrictions: "No construction allowed on slopes exceeding 30% due to geological and erosion risks.",
	},

	// Agriculture

	"A1": {
		Code:        "A",
		FullName:    "Agriculture Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.25",
		Description: "For agricultural production, farming activities and rural land uses to preserve productive agricultural land.",
		Uses: &model.ZoneUses{
			Permitted: []string{
				"Crop farming",
				"Livestock raising",
				"Agricultural processing (small scale)",
				"Farm buildings and storage",
				"Rural housing for farm operators",
			},
			Conditional: []string{
				"Agro-tourism",
				"Farm stays",
				"Agricultural research facilities",
			},
			Prohibited: []string{
				"Urban residential subdivisions",
				"Commercial development",
				"Industrial uses",
			},
		},
		Development: &model.ZoneDevelopment{
			LotSize: &model.LotSize{Min: "1 hectare for agricultural use"},
		},
	},

	// Public facilities zones

	"PA": {
		Code:        "PA",
		FullName:    "Public Administrative Zone",
		Article:     "Article 6.3",
		Table:       "Table 6.10",
		Description: "For government administrative buildings, civic facilities and public services.",
	},
	"PF1": {
		Code:        "PF1",
		FullName:    "Education and Research Facilities Zone",
		Article:     "Article 6.4",
		Table:       "Table 6.11",
		Description: "For schools, universities, research centers and educational facilities.",
	},
	"PF2": {
		Code:        "PF2",
		FullName:    "Health Facilities Zone",
		Article:     "Article 6.4",
		Table:       "Table 6.12",
		Description: "For hospitals, clinics, health centers and medical facilities.",
	},
	"PF3": {
		Code:        "PF3",
		FullName:    "Religious Facilities Zone",
		Article:     "Article 6.4",
		Table:       "Table 6.13",
		Description: "For churches, mosques, temples and other religious facilities.",
	},
	"PF4": {
		Code:        "PF4",
		FullName:    "Cultural/Memorial Sites Zone",
		Article:     "Article 6.4",
		Table:       "Table 6.14",
		Description: "For museums, memorial sites, cultural centers and heritage sites.",
	},
	"PF5": {
		Code:        "PF5",
		FullName:    "Cemetery/Crematoria Zone",
		Article:     "Article 6.4",
		Table:       "Table 6.15",
		Description: "For cemeteries, burial grounds and crematoria.",
	},

	// Utility and transport zones

	"T": {
		Code:        "T",
		FullName:    "Transportation Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.29",
		Description: "For roads, bus stations, terminals and transportation infrastructure.",
	},
	"U": {
		Code:        "U",
		FullName:    "Utility Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.30",
		Description: "For utility installations including water treatment, power substations and telecommunications.",
	},

	// Wetland and water zones

	"W2": {
		Code:        "W2",
		FullName:    "Wetland Rehabilitation Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.26",
		Description: "Wetland areas requiring rehabilitation and restoration.",
	},
	"W3": {
		Code:        "W3",
		FullName:    "Wetland Sustainable Exploitation Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.26",
		Description: "Wetland areas where controlled, sustainable use is permitted.",
	},
	"W4": {
		Code:        "W4",
		FullName:    "Wetland Conservation Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.26",
		Description: "Protected wetland areas with strict conservation requirements.",
	},
	"W5": {
		Code:        "W5",
		FullName:    "Wetland Recreational Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.26",
		Description: "Wetland areas designated for recreational activities compatible with wetland conservation.",
	},
	"WR": {
		Code:        "WB",
		FullName:    "Waterbody Zone",
		Article:     "Article 6.6",
		Table:       "Table 6.28",
		Description: "Lakes, rivers and water bodies with buffer requirements.",
	},
}
