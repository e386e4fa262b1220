package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mani-django09/new-calc-sub000/internal/calc"
)

type numerologyReq struct {
	Name string `json:"name"`
}

// POST /api/name-numerology
func NameNumerologyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req numerologyReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		hasLetter := false
		for _, c := range strings.ToLower(req.Name) {
			if c >= 'a' && c <= 'z' {
				hasLetter = true
				break
			}
		}
		if !hasLetter {
			errs.add("name", "must contain at least one letter")
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}

		res, err := calc.NameNumber(req.Name)
		if err != nil {
			respondCalcFailure(w, err)
			return
		}
		respondData(w, res)
	}
}

type snowDayReq struct {
	Snowfall    float64 `json:"snowfall"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windSpeed"`
	Location    string  `json:"location"`
}

// POST /api/snow-day
func SnowDayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req snowDayReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		errs.requireRange("snowfall", req.Snowfall, 0, 100)
		errs.requireRange("temperature", req.Temperature, -50, 50)
		errs.requireRange("windSpeed", req.WindSpeed, 0, 200)
		switch req.Location {
		case "urban", "suburban", "rural":
		default:
			errs.add("location", "must be one of urban, suburban, rural")
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		respondData(w, calc.SnowDayProbability(req.Snowfall, req.Temperature, req.WindSpeed, req.Location))
	}
}
