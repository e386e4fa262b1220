package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnowDayProbability(t *testing.T) {
	tests := []struct {
		name           string
		snowfall       float64
		temperature    float64
		windSpeed      float64
		location       string
		wantProb       int
		wantLikelihood string
	}{
		{
			// 40 + 25 + 20 + 15 = 100, capped at 100.
			name: "blizzard in the countryside", snowfall: 20, temperature: -10,
			windSpeed: 50, location: "rural", wantProb: 100, wantLikelihood: "Very High",
		},
		{
			name: "mild city day", snowfall: 0, temperature: 40,
			windSpeed: 5, location: "urban", wantProb: 5, wantLikelihood: "Very Low",
		},
		{
			// 10 + 15 + 5 + 10 = 40.
			name: "moderate suburban storm", snowfall: 4, temperature: 18,
			windSpeed: 16, location: "suburban", wantProb: 40, wantLikelihood: "Moderate",
		},
		{
			// Breakpoints are inclusive: 12in lands in the top snowfall tier.
			name: "snowfall boundary", snowfall: 12, temperature: 35,
			windSpeed: 0, location: "urban", wantProb: 45, wantLikelihood: "Moderate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnowDayProbability(tt.snowfall, tt.temperature, tt.windSpeed, tt.location)
			assert.Equal(t, tt.wantProb, got.Probability)
			assert.Equal(t, tt.wantLikelihood, got.Likelihood)
			assert.NotEmpty(t, got.Message)
		})
	}
}
