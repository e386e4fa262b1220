package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongProfile() CRSProfile {
	return CRSProfile{
		Age:            30,
		EducationLevel: "bachelors",
		LanguageScores: LanguageScores{
			Listening: 9, Reading: 9, Writing: 9, Speaking: 9,
		},
		ForeignWorkYears:  3,
		CanadianWorkYears: 2,
	}
}

func TestScoreCRSUnknownVariant(t *testing.T) {
	_, err := ScoreCRS(CRSProfile{}, CRSVariant("bogus"))
	require.Error(t, err)
}

func TestProvincialNominationIsExactlySixHundred(t *testing.T) {
	// Regression guard: nomination alone contributes +600 to the
	// additional-points subtotal, independent of everything else.
	for _, v := range []CRSVariant{CRSSimple, CRSDetailed} {
		bare, err := ScoreCRS(CRSProfile{}, v)
		require.NoError(t, err)
		nominated, err := ScoreCRS(CRSProfile{HasProvincialNomination: true}, v)
		require.NoError(t, err)

		assert.Equal(t, 600, nominated.Breakdown.AdditionalPoints-bare.Breakdown.AdditionalPoints, "variant %s", v)
		assert.Equal(t, 600, nominated.Total-bare.Total, "variant %s", v)
	}
}

func TestDetailedCoreCategories(t *testing.T) {
	res, err := ScoreCRS(strongProfile(), CRSDetailed)
	require.NoError(t, err)

	assert.Equal(t, 110, res.Breakdown.Age)       // 18-35 gets the solo max
	assert.Equal(t, 120, res.Breakdown.Education) // 0.8 × 150
	assert.Equal(t, 160, res.Breakdown.Language)  // CLB 9 across the board
	assert.Equal(t, 52, res.Breakdown.WorkExperience)
	assert.Equal(t, 100, res.Breakdown.Transferability) // two 50-point combos, capped anyway
	assert.Equal(t, 542, res.Total)
	assert.Contains(t, res.Commentary, "Highly competitive")
}

func TestDetailedAgeStepsDownAfter35(t *testing.T) {
	p := CRSProfile{EducationLevel: "secondary"}
	scores := map[int]int{35: 110, 36: 99, 40: 55, 44: 11, 45: 0, 17: 0}
	for age, want := range scores {
		p.Age = age
		res, err := ScoreCRS(p, CRSDetailed)
		require.NoError(t, err)
		assert.Equal(t, want, res.Breakdown.Age, "age %d", age)
	}
}

func TestDetailedSpouseShrinksMaximaAndAddsPoints(t *testing.T) {
	solo := strongProfile()
	accompanied := strongProfile()
	accompanied.Spouse = &SpouseProfile{
		EducationLevel:    "masters",
		CLB:               9,
		CanadianWorkYears: 3,
	}

	soloRes, err := ScoreCRS(solo, CRSDetailed)
	require.NoError(t, err)
	accRes, err := ScoreCRS(accompanied, CRSDetailed)
	require.NoError(t, err)

	assert.Equal(t, 100, accRes.Breakdown.Age)
	assert.Less(t, accRes.Breakdown.Education, soloRes.Breakdown.Education)
	// Spouse: education 10 + language 20 + experience 8 = 38.
	assert.Equal(t, 38, accRes.Breakdown.Spouse)
	assert.Equal(t, 0, soloRes.Breakdown.Spouse)
}

func TestDetailedAdditionalPointsStack(t *testing.T) {
	p := CRSProfile{
		HasProvincialNomination: true,
		HasJobOffer:             true,
		JobOfferNOC:             "noc_00",
		HasCanadianCredential:   true,
		HasSiblingInCanada:      true,
		FrenchCLB:               8,
		SecondLanguageCLB:       6,
		LanguageScores:          LanguageScores{Listening: 6, Reading: 6, Writing: 6, Speaking: 6},
	}
	res, err := ScoreCRS(p, CRSDetailed)
	require.NoError(t, err)
	// 600 + 200 + 30 + 15 + 50 + 20
	assert.Equal(t, 915, res.Breakdown.AdditionalPoints)
}

func TestDetailedJobOfferTiers(t *testing.T) {
	p := CRSProfile{HasJobOffer: true, JobOfferNOC: "noc_0ab"}
	res, err := ScoreCRS(p, CRSDetailed)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Breakdown.AdditionalPoints)

	p.JobOfferNOC = "noc_00"
	res, err = ScoreCRS(p, CRSDetailed)
	require.NoError(t, err)
	assert.Equal(t, 200, res.Breakdown.AdditionalPoints)
}

func TestSimpleVariantUsesItsOwnTables(t *testing.T) {
	p := strongProfile()
	simple, err := ScoreCRS(p, CRSSimple)
	require.NoError(t, err)
	detailed, err := ScoreCRS(p, CRSDetailed)
	require.NoError(t, err)

	// Same profile, different formula sets: simple has no transferability
	// and its own education fractions.
	assert.Equal(t, 0, simple.Breakdown.Transferability)
	assert.NotEqual(t, detailed.Total, simple.Total)
	assert.Equal(t, 105, simple.Breakdown.Age)           // age 30: 0.95 × 110
	assert.Equal(t, 113, simple.Breakdown.Education)     // 0.75 × 150, rounded
	assert.Equal(t, 160, simple.Breakdown.Language)      // CLB 9 average
	assert.Equal(t, 48, simple.Breakdown.WorkExperience) // 2 years → 0.6 × 80
}

func TestSimpleCommentaryThresholds(t *testing.T) {
	assert.Contains(t, simpleCommentary(470), "Strong")
	assert.Contains(t, simpleCommentary(455), "Borderline")
	assert.Contains(t, simpleCommentary(300), "Below")
	assert.Contains(t, detailedCommentary(500), "Highly competitive")
	assert.Contains(t, detailedCommentary(460), "Competitive")
	assert.Contains(t, detailedCommentary(400), "Below recent cutoffs")
}
