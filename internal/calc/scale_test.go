package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCGPAToPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		scale      float64
		wantPct    float64
		wantLetter string
	}{
		{"ten point mid", 8.0, 10, 76.00, "A"},
		{"ten point top", 9.5, 10, 90.25, "A+"},
		{"four point", 3.0, 4, 75.00, "A"},
		{"four point low", 1.2, 4, 30.00, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CGPAToPercentage(tt.value, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPct, got.ConvertedValue)
			assert.Equal(t, tt.wantLetter, got.LetterGrade)
		})
	}
}

func TestCGPAToPercentageUnsupportedScale(t *testing.T) {
	_, err := CGPAToPercentage(3.0, 5)
	require.ErrorIs(t, err, ErrUnsupportedScale)
}

func TestPercentageToCGPAClampsAtScaleMax(t *testing.T) {
	// 97/9.5 = 10.21 on a 10-point scale; capped, not rejected.
	got, err := PercentageToCGPA(97, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.ConvertedValue)
}

func TestScaleConversionRoundTrip(t *testing.T) {
	for _, x := range []float64{1, 2.5, 5, 7.33, 9, 10} {
		pct, err := CGPAToPercentage(x, 10)
		require.NoError(t, err)
		back, err := PercentageToCGPA(pct.ConvertedValue, 10)
		require.NoError(t, err)
		assert.InDelta(t, x, back.ConvertedValue, 0.01, "round trip for %v", x)
	}
}

func TestClassifyHighestBoundFirst(t *testing.T) {
	assert.Equal(t, "A+", classify(cgpaBands, 85).Letter)
	assert.Equal(t, "A", classify(cgpaBands, 84.99).Letter)
	assert.Equal(t, "F", classify(cgpaBands, 39.99).Letter)
	assert.Equal(t, "C", classify(cgpaBands, 40).Letter)
}
