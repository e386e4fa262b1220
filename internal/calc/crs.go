package calc

import "fmt"

// CRSVariant selects one of the two independently evolved CRS formula sets.
// They use different point tables and different competitiveness thresholds
// and are exposed as distinct user-facing tools; do not unify them.
type CRSVariant string

const (
	CRSSimple   CRSVariant = "simple"
	CRSDetailed CRSVariant = "detailed"
)

// LanguageScores holds CLB-equivalent levels (0-10) per ability.
type LanguageScores struct {
	Listening float64 `json:"listening"`
	Reading   float64 `json:"reading"`
	Writing   float64 `json:"writing"`
	Speaking  float64 `json:"speaking"`
}

// Average is the mean CLB level across the four abilities.
func (l LanguageScores) Average() float64 {
	return (l.Listening + l.Reading + l.Writing + l.Speaking) / 4
}

// SpouseProfile carries the accompanying spouse's factors. Spouse points are
// summed on their own small tables and added to the total; they are not
// scaled against the core maxima.
type SpouseProfile struct {
	EducationLevel    string  `json:"educationLevel"`
	CLB               float64 `json:"clb"`
	CanadianWorkYears int     `json:"canadianWorkYears"`
}

// CRSProfile describes one applicant. Fields beyond the core four categories
// feed skill transferability and the flat additional-point bonuses.
type CRSProfile struct {
	Age                     int            `json:"age"`
	EducationLevel          string         `json:"educationLevel"`
	LanguageScores          LanguageScores `json:"languageScores"`
	ForeignWorkYears        int            `json:"foreignWorkYears"`
	CanadianWorkYears       int            `json:"canadianWorkYears"`
	HasJobOffer             bool           `json:"hasJobOffer"`
	JobOfferNOC             string         `json:"jobOfferNoc"` // "noc_00" | "noc_0ab" | ""
	HasProvincialNomination bool           `json:"hasProvincialNomination"`
	HasCanadianCredential   bool           `json:"hasCanadianCredential"`
	HasSiblingInCanada      bool           `json:"hasSiblingInCanada"`
	FrenchCLB               float64        `json:"frenchClb"`
	SecondLanguageCLB       float64        `json:"secondLanguageClb"`
	Spouse                  *SpouseProfile `json:"spouse,omitempty"`
}

// CRSBreakdown reports the top-level category subtotals.
type CRSBreakdown struct {
	Age              int `json:"age"`
	Education        int `json:"education"`
	Language         int `json:"language"`
	WorkExperience   int `json:"workExperience"`
	Spouse           int `json:"spouse"`
	Transferability  int `json:"transferability"`
	AdditionalPoints int `json:"additionalPoints"`
}

type CRSResult struct {
	Total      int          `json:"total"`
	Breakdown  CRSBreakdown `json:"breakdown"`
	Commentary string       `json:"commentary"`
}

type crsScorer interface {
	Score(p CRSProfile) CRSResult
}

var crsScorers = map[CRSVariant]crsScorer{
	CRSSimple:   simpleCRS{},
	CRSDetailed: detailedCRS{},
}

// ScoreCRS evaluates the profile under the named variant.
func ScoreCRS(p CRSProfile, v CRSVariant) (CRSResult, error) {
	s, ok := crsScorers[v]
	if !ok {
		return CRSResult{}, fmt.Errorf("unknown CRS variant %q", v)
	}
	return s.Score(p), nil
}

// fractionTier maps an inclusive lower bound to a fraction of a category
// maximum. Ordered highest bound first.
type fractionTier struct {
	Min      float64
	Fraction float64
}

func lookupFraction(tiers []fractionTier, v float64) float64 {
	for _, t := range tiers {
		if v >= t.Min {
			return t.Fraction
		}
	}
	return 0
}
