package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameNumber(t *testing.T) {
	// N=5 I=9 K=2 O=6 L=3 A=1 → 26 → 8
	got, err := NameNumber("Nikola")
	require.NoError(t, err)
	assert.Equal(t, 26, got.Sum)
	assert.Equal(t, 8, got.Number)
	require.Len(t, got.Breakdown, 6)
	assert.Equal(t, LetterValue{Letter: "N", Value: 5}, got.Breakdown[0])
	assert.Equal(t, LetterValue{Letter: "a", Value: 1}, got.Breakdown[5])
	assert.Contains(t, got.Meaning, "Achiever")
}

func TestNameNumberMasterNumberHaltsReduction(t *testing.T) {
	// a+a+i+i+i = 1+1+9+9+9 = 29 → 2+9 = 11, which is terminal.
	got, err := NameNumber("aaiii")
	require.NoError(t, err)
	assert.Equal(t, 29, got.Sum)
	assert.Equal(t, 11, got.Number)
	assert.Contains(t, got.Meaning, "Master Number 11")
}

func TestNameNumberDirectMasterSum(t *testing.T) {
	// d+i+i = 4+9+9 = 22; never reduced to 4.
	got, err := NameNumber("dii")
	require.NoError(t, err)
	assert.Equal(t, 22, got.Number)
	assert.Contains(t, got.Meaning, "Master Builder")
}

func TestNameNumberStripsNonLetters(t *testing.T) {
	spaced, err := NameNumber("Ni ko-la 9")
	require.NoError(t, err)
	plain, err2 := NameNumber("Nikola")
	require.NoError(t, err2)
	assert.Equal(t, plain.Number, spaced.Number)
	assert.Equal(t, plain.Sum, spaced.Sum)
}

func TestNameNumberNoLetters(t *testing.T) {
	_, err := NameNumber("123 !?")
	require.ErrorIs(t, err, ErrNoLetters)
}

func TestLetterTableCycle(t *testing.T) {
	// a,j,s → 1; i,r → 9.
	for _, r := range "ajs" {
		assert.Equal(t, 1, letterValue(r))
	}
	for _, r := range "ir" {
		assert.Equal(t, 9, letterValue(r))
	}
}
