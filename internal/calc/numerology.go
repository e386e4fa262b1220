package calc

import (
	"errors"
	"unicode"
)

// ErrNoLetters is returned when a name contains no a-z characters after
// stripping; there is nothing to sum.
var ErrNoLetters = errors.New("name must contain at least one letter")

// Pythagorean mapping: a..z cycle through 1..9 (a,j,s→1; b,k,t→2; … i,r→9).
func letterValue(r rune) int {
	return int(r-'a')%9 + 1
}

var numerologyMeanings = map[int]string{
	1:  "The Leader: independent, ambitious and driven to pioneer.",
	2:  "The Diplomat: cooperative, sensitive and a natural peacemaker.",
	3:  "The Communicator: creative, expressive and socially magnetic.",
	4:  "The Builder: practical, disciplined and devoted to stability.",
	5:  "The Adventurer: versatile, curious and hungry for freedom.",
	6:  "The Nurturer: responsible, caring and drawn to harmony at home.",
	7:  "The Seeker: analytical, introspective and spiritually inclined.",
	8:  "The Achiever: authoritative, goal-oriented and built for material success.",
	9:  "The Humanitarian: compassionate, generous and globally minded.",
	11: "Master Number 11 - The Intuitive: visionary insight and spiritual illumination.",
	22: "Master Number 22 - The Master Builder: turns grand visions into reality.",
	33: "Master Number 33 - The Master Teacher: selfless service and healing guidance.",
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// LetterValue is one line of the letter-by-letter breakdown, in input order.
type LetterValue struct {
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

type NumerologyResult struct {
	Number    int           `json:"number"`
	Sum       int           `json:"sum"`
	Meaning   string        `json:"meaning"`
	Breakdown []LetterValue `json:"breakdown"`
}

// NameNumber sums the Pythagorean values of the letters in name and reduces
// the sum digit-by-digit. Reduction halts the moment the running value is a
// single digit or a master number (11/22/33) — a master number reached
// mid-chain is terminal and is not reduced further.
func NameNumber(name string) (NumerologyResult, error) {
	sum := 0
	var breakdown []LetterValue
	for _, r := range name {
		lr := unicode.ToLower(r)
		if lr < 'a' || lr > 'z' {
			continue
		}
		v := letterValue(lr)
		sum += v
		breakdown = append(breakdown, LetterValue{Letter: string(r), Value: v})
	}
	if len(breakdown) == 0 {
		return NumerologyResult{}, ErrNoLetters
	}

	n := sum
	for n > 9 && !isMaster(n) {
		n = digitSum(n)
	}

	return NumerologyResult{
		Number:    n,
		Sum:       sum,
		Meaning:   numerologyMeanings[n],
		Breakdown: breakdown,
	}, nil
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
