package calc

// GradeEntry is one academic subject: a grade on a 10-point scale and its
// credit weight. Entries arrive range-checked by the HTTP input contract
// (grade in [0,10], credit >= 0.5).
type GradeEntry struct {
	Grade  float64 `json:"grade"`
	Credit float64 `json:"credit"`
}

// GradePoint is the per-subject line of a CGPA breakdown.
type GradePoint struct {
	Grade  float64 `json:"grade"`
	Credit float64 `json:"credit"`
	Points float64 `json:"points"`
}

type CGPAResult struct {
	CGPA         float64      `json:"cgpa"`
	TotalCredits float64      `json:"totalCredits"`
	Breakdown    []GradePoint `json:"breakdown"`
}

// WeightedCGPA computes the credit-weighted grade average over at least one
// entry. Credits are strictly positive upstream, so the total can't be zero.
func WeightedCGPA(entries []GradeEntry) CGPAResult {
	var totalPoints, totalCredits float64
	breakdown := make([]GradePoint, 0, len(entries))
	for _, e := range entries {
		p := e.Grade * e.Credit
		totalPoints += p
		totalCredits += e.Credit
		breakdown = append(breakdown, GradePoint{Grade: e.Grade, Credit: e.Credit, Points: Round2(p)})
	}
	return CGPAResult{
		CGPA:         Round2(totalPoints / totalCredits),
		TotalCredits: Round2(totalCredits),
		Breakdown:    breakdown,
	}
}
