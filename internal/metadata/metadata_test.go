package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	m, ok := reg.Get("cgpa-calculator")
	require.True(t, ok)
	assert.Equal(t, "CGPA Calculator", m.Title)
	assert.Equal(t, "academic", m.Category)

	_, ok = reg.Get("does-not-exist")
	assert.False(t, ok)
}

func TestNamesCoversEveryCalculator(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	names := reg.Names()
	assert.Len(t, names, 11)
	for _, want := range []string{
		"cgpa-calculator", "cgpa-to-percentage", "percentage-to-cgpa",
		"marks-percentage", "name-numerology", "share-average", "snow-day",
		"mortgage-payoff", "mortgage-overpayment",
		"crs-calculator", "crs-score-calculator",
	} {
		assert.Contains(t, names, want)
	}
}
