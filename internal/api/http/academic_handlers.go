package http

import (
	"encoding/json"
	"net/http"

	"github.com/mani-django09/new-calc-sub000/internal/calc"
)

type cgpaReq struct {
	Grades  []float64 `json:"grades"`
	Credits []float64 `json:"credits"`
}

// POST /api/cgpa-calculator
func CGPAHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cgpaReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		if len(req.Grades) == 0 {
			errs.add("grades", "at least one grade is required")
		}
		if len(req.Grades) != len(req.Credits) {
			errs.add("credits", "must have the same length as grades")
		}
		for i, g := range req.Grades {
			if g < 0 || g > 10 {
				errs.add("grades", "grade #%d must be between 0 and 10", i+1)
			}
		}
		for i, c := range req.Credits {
			if c < 0.5 {
				errs.add("credits", "credit #%d must be at least 0.5", i+1)
			}
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}

		entries := make([]calc.GradeEntry, len(req.Grades))
		for i := range req.Grades {
			entries[i] = calc.GradeEntry{Grade: req.Grades[i], Credit: req.Credits[i]}
		}
		respondData(w, calc.WeightedCGPA(entries))
	}
}

type toPercentageReq struct {
	CGPA  float64 `json:"cgpa"`
	Scale float64 `json:"scale"`
}

// POST /api/cgpa-to-percentage
func CGPAToPercentageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toPercentageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		if req.Scale != 4 && req.Scale != 10 {
			errs.add("scale", "must be 4 or 10")
		} else {
			errs.requireRange("cgpa", req.CGPA, 0, req.Scale)
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}

		res, err := calc.CGPAToPercentage(req.CGPA, req.Scale)
		if err != nil {
			respondCalcFailure(w, err)
			return
		}
		respondData(w, res)
	}
}

type toCGPAReq struct {
	Percentage float64 `json:"percentage"`
	Scale      float64 `json:"scale"`
}

// POST /api/percentage-to-cgpa
func PercentageToCGPAHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toCGPAReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		if req.Scale != 4 && req.Scale != 10 {
			errs.add("scale", "must be 4 or 10")
		}
		errs.requireRange("percentage", req.Percentage, 0, 100)
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}

		res, err := calc.PercentageToCGPA(req.Percentage, req.Scale)
		if err != nil {
			respondCalcFailure(w, err)
			return
		}
		respondData(w, res)
	}
}

type marksReq struct {
	ObtainedMarks float64 `json:"obtainedMarks"`
	TotalMarks    float64 `json:"totalMarks"`
}

// POST /api/marks-percentage
func MarksPercentageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req marksReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		errs.requireMin("obtainedMarks", req.ObtainedMarks, 0)
		errs.requireMin("totalMarks", req.TotalMarks, 1)
		if req.ObtainedMarks > req.TotalMarks {
			errs.add("obtainedMarks", "cannot exceed totalMarks")
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		respondData(w, calc.MarksPercentage(req.ObtainedMarks, req.TotalMarks))
	}
}
