package calc

// Snow day scoring is a fixed heuristic rubric: four independently capped
// additive factors, total capped at 100. The breakpoints and weights are
// constants to reproduce, not derived from any weather model.

type pointTier struct {
	Min    float64
	Points int
}

// Tiers are ordered highest breakpoint first; first match wins.
var snowfallTiers = []pointTier{
	{Min: 12, Points: 40},
	{Min: 8, Points: 30},
	{Min: 6, Points: 20},
	{Min: 4, Points: 10},
	{Min: 2, Points: 5},
}

// Colder is worse: tiers keyed on upper bounds, coldest first.
var temperatureTiers = []struct {
	Max    float64
	Points int
}{
	{Max: 10, Points: 25},
	{Max: 20, Points: 15},
	{Max: 25, Points: 10},
	{Max: 30, Points: 5},
}

var windTiers = []pointTier{
	{Min: 40, Points: 20},
	{Min: 30, Points: 15},
	{Min: 20, Points: 10},
	{Min: 15, Points: 5},
}

var locationPoints = map[string]int{
	"rural":    15,
	"suburban": 10,
	"urban":    5,
}

// likelihoodBands map a capped probability to a band plus advisory text.
var likelihoodBands = []struct {
	Min        int
	Likelihood string
	Message    string
}{
	{80, "Very High", "A snow day is almost certain. Plan for school and work closures."},
	{60, "High", "A snow day is likely. Prepare for closures and delayed openings."},
	{40, "Moderate", "A snow day is possible. Watch local announcements closely."},
	{20, "Low", "A snow day is unlikely, but minor delays are possible."},
	{0, "Very Low", "Conditions look normal. Expect a regular schedule."},
}

type SnowDayResult struct {
	Probability int    `json:"probability"`
	Likelihood  string `json:"likelihood"`
	Message     string `json:"message"`
}

// SnowDayProbability scores snowfall (inches), temperature (°F), wind speed
// (mph) and location type into a 0-100 probability.
func SnowDayProbability(snowfall, temperature, windSpeed float64, location string) SnowDayResult {
	score := 0
	for _, t := range snowfallTiers {
		if snowfall >= t.Min {
			score += t.Points
			break
		}
	}
	for _, t := range temperatureTiers {
		if temperature <= t.Max {
			score += t.Points
			break
		}
	}
	for _, t := range windTiers {
		if windSpeed >= t.Min {
			score += t.Points
			break
		}
	}
	score += locationPoints[location]

	if score > 100 {
		score = 100
	}
	for _, b := range likelihoodBands {
		if score >= b.Min {
			return SnowDayResult{Probability: score, Likelihood: b.Likelihood, Message: b.Message}
		}
	}
	return SnowDayResult{Probability: score}
}
