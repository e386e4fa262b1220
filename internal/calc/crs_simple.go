package calc

import "math"

// simpleCRS is the older, coarser formula set: core categories only, no
// spouse or transferability handling, flat job-offer bonus, and its own
// commentary thresholds. Kept separate from detailedCRS on purpose.
type simpleCRS struct{}

var simpleMax = crsMaxima{Age: 110, Education: 150, Language: 160, Work: 80}

// Coarser age buckets than the detailed table.
var simpleAgeTiers = []struct {
	MaxAge   int
	Fraction float64
}{
	{17, 0},
	{29, 1.0},
	{35, 0.95},
	{39, 0.7},
	{44, 0.35},
}

var simpleEducationFractions = map[string]float64{
	"secondary":        0.25,
	"one_year_diploma": 0.55,
	"two_year_diploma": 0.6,
	"bachelors":        0.75,
	"masters":          0.9,
	"phd":              1.0,
}

var simpleCLBTiers = []fractionTier{
	{Min: 9, Fraction: 1.0},
	{Min: 7, Fraction: 0.75},
	{Min: 5, Fraction: 0.5},
	{Min: 4, Fraction: 0.25},
}

var simpleWorkTiers = []fractionTier{
	{Min: 6, Fraction: 1.0},
	{Min: 4, Fraction: 0.8},
	{Min: 2, Fraction: 0.6},
	{Min: 1, Fraction: 0.4},
}

func (simpleCRS) Score(p CRSProfile) CRSResult {
	ageFraction := 0.0
	for _, t := range simpleAgeTiers {
		if p.Age <= t.MaxAge {
			ageFraction = t.Fraction
			break
		}
	}

	agePts := int(math.Round(ageFraction * float64(simpleMax.Age)))
	eduPts := int(math.Round(simpleEducationFractions[p.EducationLevel] * float64(simpleMax.Education)))
	langPts := int(math.Round(lookupFraction(simpleCLBTiers, p.LanguageScores.Average()) * float64(simpleMax.Language)))
	workPts := int(math.Round(lookupFraction(simpleWorkTiers, float64(p.CanadianWorkYears)) * float64(simpleMax.Work)))

	additional := 0
	if p.HasProvincialNomination {
		additional += 600
	}
	if p.HasJobOffer {
		additional += 50
	}

	total := agePts + eduPts + langPts + workPts + additional
	return CRSResult{
		Total: total,
		Breakdown: CRSBreakdown{
			Age:              agePts,
			Education:        eduPts,
			Language:         langPts,
			WorkExperience:   workPts,
			AdditionalPoints: additional,
		},
		Commentary: simpleCommentary(total),
	}
}

func simpleCommentary(total int) string {
	switch {
	case total >= 470:
		return "Strong profile: comfortably above typical draw scores."
	case total >= 450:
		return "Borderline: within reach of recent draws, but not guaranteed."
	default:
		return "Below typical draw scores: boosting language or work experience would help most."
	}
}
