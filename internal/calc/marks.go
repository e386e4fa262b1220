package calc

// marksBands classifies a raw marks percentage. Kept separate from cgpaBands
// on purpose; see the comment there.
var marksBands = []GradeBand{
	{Min: 90, Letter: "A+", Performance: "Outstanding"},
	{Min: 80, Letter: "A", Performance: "Excellent"},
	{Min: 70, Letter: "B", Performance: "Very Good"},
	{Min: 60, Letter: "C", Performance: "Good"},
	{Min: 50, Letter: "D", Performance: "Average"},
	{Min: 40, Letter: "E", Performance: "Pass"},
	{Min: 0, Letter: "F", Performance: "Fail"},
}

type MarksResult struct {
	ObtainedMarks float64 `json:"obtainedMarks"`
	TotalMarks    float64 `json:"totalMarks"`
	Percentage    float64 `json:"percentage"`
	Grade         string  `json:"grade"`
	Status        string  `json:"status"`
}

// MarksPercentage computes (obtained/total)×100. The input contract
// guarantees total >= 1 and 0 <= obtained <= total.
func MarksPercentage(obtained, total float64) MarksResult {
	pct := Round2(obtained / total * 100)
	band := classify(marksBands, pct)
	return MarksResult{
		ObtainedMarks: obtained,
		TotalMarks:    total,
		Percentage:    pct,
		Grade:         band.Letter,
		Status:        band.Performance,
	}
}
