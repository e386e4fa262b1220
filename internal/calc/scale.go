package calc

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScale is returned for any grading scale other than 4 or 10.
var ErrUnsupportedScale = errors.New("unsupported scale: only 4 and 10 are valid")

// GradeBand is one row of an ordered classification table. Bands are
// evaluated highest bound first; the first band whose inclusive lower bound
// is <= the value wins.
type GradeBand struct {
	Min         float64
	Letter      string
	Performance string
	Label       string
}

// cgpaBands classifies a percentage derived from a CGPA/GPA conversion.
// Deliberately distinct from marksBands: the two tables evolved separately
// in the original calculators and their boundaries differ ("A" starts at 75
// here but at 80 for raw marks).
var cgpaBands = []GradeBand{
	{Min: 85, Letter: "A+", Performance: "Outstanding", Label: "First Class with Distinction"},
	{Min: 75, Letter: "A", Performance: "Excellent", Label: "First Class"},
	{Min: 65, Letter: "B+", Performance: "Very Good", Label: "Second Class"},
	{Min: 55, Letter: "B", Performance: "Good", Label: "Second Class"},
	{Min: 40, Letter: "C", Performance: "Average", Label: "Pass Class"},
	{Min: 0, Letter: "F", Performance: "Fail", Label: "Fail"},
}

func classify(bands []GradeBand, v float64) GradeBand {
	for _, b := range bands {
		if v >= b.Min {
			return b
		}
	}
	return bands[len(bands)-1]
}

// ConversionResult is the shaped output of both conversion directions.
type ConversionResult struct {
	Value               float64 `json:"value"`
	Scale               float64 `json:"scale"`
	ConvertedValue      float64 `json:"convertedValue"`
	LetterGrade         string  `json:"letterGrade"`
	PerformanceLabel    string  `json:"performanceLabel"`
	ClassificationLabel string  `json:"classificationLabel"`
	FormulaDescription  string  `json:"formulaDescription"`
}

// CGPAToPercentage converts a grade-point value to a percentage. The 10-point
// conversion uses the 9.5 multiplier convention; the 4-point scale maps
// linearly onto 0-100.
func CGPAToPercentage(value, scale float64) (ConversionResult, error) {
	var pct float64
	var formula string
	switch scale {
	case 10:
		pct = value * 9.5
		formula = "Percentage = CGPA × 9.5"
	case 4:
		pct = (value / 4) * 100
		formula = "Percentage = (GPA ÷ 4) × 100"
	default:
		return ConversionResult{}, fmt.Errorf("%w (got %g)", ErrUnsupportedScale, scale)
	}
	pct = Round2(pct)
	band := classify(cgpaBands, pct)
	return ConversionResult{
		Value:               value,
		Scale:               scale,
		ConvertedValue:      pct,
		LetterGrade:         band.Letter,
		PerformanceLabel:    band.Performance,
		ClassificationLabel: band.Label,
		FormulaDescription:  formula,
	}, nil
}

// PercentageToCGPA converts a percentage back to a grade-point value. The
// result is capped at the scale maximum instead of rejected: the 9.5
// convention overshoots slightly near the top (e.g. 97% → 10.21 on the
// 10-point scale) and that is tolerated, not an input error.
func PercentageToCGPA(percentage, scale float64) (ConversionResult, error) {
	var v float64
	var formula string
	switch scale {
	case 10:
		v = percentage / 9.5
		formula = "CGPA = Percentage ÷ 9.5"
	case 4:
		v = (percentage / 100) * 4
		formula = "GPA = (Percentage ÷ 100) × 4"
	default:
		return ConversionResult{}, fmt.Errorf("%w (got %g)", ErrUnsupportedScale, scale)
	}
	v = Round2(v)
	if v > scale {
		v = scale
	}
	band := classify(cgpaBands, Round2(percentage))
	return ConversionResult{
		Value:               percentage,
		Scale:               scale,
		ConvertedValue:      v,
		LetterGrade:         band.Letter,
		PerformanceLabel:    band.Performance,
		ClassificationLabel: band.Label,
		FormulaDescription:  formula,
	}, nil
}
