package match

// overrideTable maps known channel display names to canonical EPG
// identifiers. Both the raw and the annotation-stripped variants of a
// name are registered so that lookups stay exact after cleaning.
var overrideTable = map[string]string{
	"TF1":              "TF1.fr",
	"TF1 HD":           "TF1.fr",
	"France 2":         "France2.fr",
	"France 2 HD":      "France2.fr",
	"France 3":         "France3.fr",
	"France 3 HD":      "France3.fr",
	"France 4":         "France4.fr",
	"France 5":         "France5.fr",
	"Canal+":           "CanalPlus.fr",
	"Canal+ HD":        "CanalPlus.fr",
	"M6":               "M6.fr",
	"M6 HD":            "M6.fr",
	"Arte":             "Arte.fr",
	"Arte HD":          "Arte.fr",
	"C8":               "C8.fr",
	"W9":               "W9.fr",
	"TMC":              "TMC.fr",
	"TFX":              "TFX.fr",
	"NRJ 12":           "NRJ12.fr",
	"LCP":              "LCP.fr",
	"BFM TV":           "BFMTV.fr",
	"BFMTV":            "BFMTV.fr",
	"CNews":            "CNews.fr",
	"CStar":            "CStar.fr",
	"Gulli":            "Gulli.fr",
	"TF1 Séries Films": "TF1SeriesFilms.fr",
	"L'Équipe":         "LEquipe.fr",
	"6ter":             "6ter.fr",
	"RMC Story":        "RMCStory.fr",
	"RMC Découverte":   "RMCDecouverte.fr",
	"Chérie 25":        "Cherie25.fr",
	"LCI":              "LCI.fr",
	"France Info":      "FranceInfo.fr",
	"France 24":        "France24.fr",
	"Euronews":         "Euronews.fr",
	"TV5 Monde":        "TV5Monde.fr",
	"TV5Monde":         "TV5Monde.fr",
}

// DefaultOverrides returns the embedded production table. Callers that
// need a synthetic table construct the Resolver with their own map.
func DefaultOverrides() map[string]string {
	return overrideTable
}
