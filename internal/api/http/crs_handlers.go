package http

import (
	"encoding/json"
	"net/http"

	"github.com/mani-django09/new-calc-sub000/internal/calc"
)

func validateCRSProfile(p calc.CRSProfile) fieldErrors {
	var errs fieldErrors
	errs.requireRange("age", float64(p.Age), 16, 100)
	errs.requireRange("languageScores.listening", p.LanguageScores.Listening, 0, 10)
	errs.requireRange("languageScores.reading", p.LanguageScores.Reading, 0, 10)
	errs.requireRange("languageScores.writing", p.LanguageScores.Writing, 0, 10)
	errs.requireRange("languageScores.speaking", p.LanguageScores.Speaking, 0, 10)
	errs.requireRange("foreignWorkYears", float64(p.ForeignWorkYears), 0, 50)
	errs.requireRange("canadianWorkYears", float64(p.CanadianWorkYears), 0, 50)
	errs.requireRange("frenchClb", p.FrenchCLB, 0, 10)
	errs.requireRange("secondLanguageClb", p.SecondLanguageCLB, 0, 10)
	if p.Spouse != nil {
		errs.requireRange("spouse.clb", p.Spouse.CLB, 0, 10)
		errs.requireRange("spouse.canadianWorkYears", float64(p.Spouse.CanadianWorkYears), 0, 50)
	}
	return errs
}

func crsHandler(variant calc.CRSVariant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile calc.CRSProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			respondBadJSON(w, err)
			return
		}
		if errs := validateCRSProfile(profile); !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		res, err := calc.ScoreCRS(profile, variant)
		if err != nil {
			respondCalcFailure(w, err)
			return
		}
		respondData(w, res)
	}
}

// POST /api/crs-calculator — the detailed formula set.
func CRSDetailedHandler() http.HandlerFunc {
	return crsHandler(calc.CRSDetailed)
}

// POST /api/crs-score-calculator — the older, coarser formula set. Exposed
// as its own tool; the two are deliberately not unified.
func CRSSimpleHandler() http.HandlerFunc {
	return crsHandler(calc.CRSSimple)
}
