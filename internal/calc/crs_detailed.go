package calc

import "math"

// detailedCRS is the fuller of the two formula sets: spouse factors, skill
// transferability and the complete additional-points list. Category maxima
// shrink when a spouse accompanies the applicant.
type detailedCRS struct{}

type crsMaxima struct {
	Age       int
	Education int
	Language  int
	Work      int
}

var (
	detailedSoloMax        = crsMaxima{Age: 110, Education: 150, Language: 160, Work: 80}
	detailedAccompaniedMax = crsMaxima{Age: 100, Education: 140, Language: 150, Work: 70}
)

// Full age points through 35, stepping down each year to zero at 45.
func detailedAgeFraction(age int) float64 {
	switch {
	case age < 18:
		return 0
	case age <= 35:
		return 1
	case age <= 44:
		return float64(45-age) / 10
	default:
		return 0
	}
}

var detailedEducationFractions = map[string]float64{
	"secondary":           0.2,
	"one_year_diploma":    0.6,
	"two_year_diploma":    0.65,
	"bachelors":           0.8,
	"two_or_more_degrees": 0.85,
	"masters":             0.9,
	"phd":                 1.0,
}

// Per-ability CLB tiers; each ability is worth a quarter of the language max.
var detailedCLBTiers = []fractionTier{
	{Min: 9, Fraction: 1.0},
	{Min: 8, Fraction: 0.85},
	{Min: 7, Fraction: 0.7},
	{Min: 6, Fraction: 0.55},
	{Min: 5, Fraction: 0.4},
	{Min: 4, Fraction: 0.25},
}

var detailedWorkTiers = []fractionTier{
	{Min: 6, Fraction: 1.0},
	{Min: 5, Fraction: 0.95},
	{Min: 4, Fraction: 0.85},
	{Min: 3, Fraction: 0.75},
	{Min: 2, Fraction: 0.65},
	{Min: 1, Fraction: 0.5},
}

// Spouse tables are small flat maxima: education 10, language 20, Canadian
// experience 10.
var spouseEducationPoints = map[string]int{
	"secondary":           2,
	"one_year_diploma":    6,
	"two_year_diploma":    7,
	"bachelors":           8,
	"two_or_more_degrees": 9,
	"masters":             10,
	"phd":                 10,
}

var spouseLanguageTiers = []fractionTier{
	{Min: 9, Fraction: 1.0},
	{Min: 7, Fraction: 0.75},
	{Min: 5, Fraction: 0.5},
	{Min: 4, Fraction: 0.25},
}

var spouseExperiencePoints = []struct {
	MinYears int
	Points   int
}{
	{5, 10},
	{3, 8},
	{2, 5},
	{1, 3},
}

var detailedJobOfferPoints = map[string]int{
	"noc_00":  200,
	"noc_0ab": 50,
}

func advancedDegree(level string) bool {
	switch level {
	case "masters", "phd", "two_or_more_degrees":
		return true
	}
	return false
}

func (detailedCRS) Score(p CRSProfile) CRSResult {
	maxima := detailedSoloMax
	if p.Spouse != nil {
		maxima = detailedAccompaniedMax
	}

	agePts := int(math.Round(detailedAgeFraction(p.Age) * float64(maxima.Age)))
	eduPts := int(math.Round(detailedEducationFractions[p.EducationLevel] * float64(maxima.Education)))

	perAbility := float64(maxima.Language) / 4
	langSum := 0.0
	for _, clb := range []float64{
		p.LanguageScores.Listening,
		p.LanguageScores.Reading,
		p.LanguageScores.Writing,
		p.LanguageScores.Speaking,
	} {
		langSum += lookupFraction(detailedCLBTiers, clb) * perAbility
	}
	langPts := int(math.Round(langSum))

	workPts := int(math.Round(lookupFraction(detailedWorkTiers, float64(p.CanadianWorkYears)) * float64(maxima.Work)))

	spousePts := 0
	if p.Spouse != nil {
		spousePts += spouseEducationPoints[p.Spouse.EducationLevel]
		spousePts += int(math.Round(lookupFraction(spouseLanguageTiers, p.Spouse.CLB) * 20))
		for _, t := range spouseExperiencePoints {
			if p.Spouse.CanadianWorkYears >= t.MinYears {
				spousePts += t.Points
				break
			}
		}
	}

	transfer := detailedTransferability(p)

	additional := 0
	if p.HasProvincialNomination {
		additional += 600
	}
	if p.HasJobOffer {
		additional += detailedJobOfferPoints[p.JobOfferNOC]
	}
	if p.HasCanadianCredential {
		additional += 30
	}
	if p.HasSiblingInCanada {
		additional += 15
	}
	if p.FrenchCLB >= 7 && p.LanguageScores.Average() >= 5 {
		additional += 50
	}
	if p.SecondLanguageCLB >= 5 {
		additional += 20
	}

	total := agePts + eduPts + langPts + workPts + spousePts + transfer + additional
	return CRSResult{
		Total: total,
		Breakdown: CRSBreakdown{
			Age:              agePts,
			Education:        eduPts,
			Language:         langPts,
			WorkExperience:   workPts,
			Spouse:           spousePts,
			Transferability:  transfer,
			AdditionalPoints: additional,
		},
		Commentary: detailedCommentary(total),
	}
}

// detailedTransferability awards the combinatorial bonuses, capped at 100.
func detailedTransferability(p CRSProfile) int {
	avg := p.LanguageScores.Average()
	pts := 0

	// Strong language combined with foreign experience.
	switch {
	case avg >= 9 && p.ForeignWorkYears >= 3:
		pts += 50
	case avg >= 7 && p.ForeignWorkYears >= 1:
		pts += 25
	}

	// Canadian plus foreign experience.
	switch {
	case p.CanadianWorkYears >= 2 && p.ForeignWorkYears >= 3:
		pts += 50
	case p.CanadianWorkYears >= 1 && p.ForeignWorkYears >= 1:
		pts += 25
	}

	// Advanced education combined with strong language.
	if advancedDegree(p.EducationLevel) {
		switch {
		case avg >= 9:
			pts += 50
		case avg >= 7:
			pts += 25
		}
	}

	if pts > 100 {
		pts = 100
	}
	return pts
}

func detailedCommentary(total int) string {
	switch {
	case total >= 500:
		return "Highly competitive: this score has cleared every recent Express Entry draw."
	case total >= 450:
		return "Competitive: this score is close to recent draw cutoffs; small improvements could secure an invitation."
	default:
		return "Below recent cutoffs: consider improving language scores, education or securing a provincial nomination."
	}
}
