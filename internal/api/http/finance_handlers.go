package http

import (
	"encoding/json"
	"net/http"

	"github.com/mani-django09/new-calc-sub000/internal/calc"
)

type mortgageReq struct {
	LoanAmount    float64 `json:"loanAmount"`
	InterestRate  float64 `json:"interestRate"`
	LoanTerm      int     `json:"loanTerm"`
	ExtraPayment  float64 `json:"extraPayment"`
	YearlyPayment float64 `json:"yearlyPayment"`
}

func (req mortgageReq) validate() fieldErrors {
	var errs fieldErrors
	errs.requireMin("loanAmount", req.LoanAmount, 1000)
	errs.requireRange("interestRate", req.InterestRate, 0.1, 30)
	errs.requireRange("loanTerm", float64(req.LoanTerm), 1, 50)
	errs.requireMin("extraPayment", req.ExtraPayment, 0)
	errs.requireMin("yearlyPayment", req.YearlyPayment, 0)
	return errs
}

// POST /api/mortgage-payoff
// Monthly extra payments only; yearlyPayment is ignored here even if sent.
func MortgagePayoffHandler(capFactor int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mortgageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		if errs := req.validate(); !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		respondData(w, calc.Amortize(calc.LoanParameters{
			Principal:         req.LoanAmount,
			AnnualRatePercent: req.InterestRate,
			TermYears:         req.LoanTerm,
			ExtraMonthly:      req.ExtraPayment,
		}, capFactor))
	}
}

// POST /api/mortgage-overpayment
// Adds a yearly lump sum on every 12-month boundary on top of the monthly
// extra.
func MortgageOverpaymentHandler(capFactor int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mortgageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		if errs := req.validate(); !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		respondData(w, calc.Amortize(calc.LoanParameters{
			Principal:         req.LoanAmount,
			AnnualRatePercent: req.InterestRate,
			TermYears:         req.LoanTerm,
			ExtraMonthly:      req.ExtraPayment,
			ExtraYearly:       req.YearlyPayment,
		}, capFactor))
	}
}

type shareAverageReq struct {
	Purchases []calc.PurchaseEntry `json:"purchases"`
}

// POST /api/share-average
func ShareAverageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shareAverageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadJSON(w, err)
			return
		}
		var errs fieldErrors
		if len(req.Purchases) == 0 {
			errs.add("purchases", "at least one purchase is required")
		}
		for i, p := range req.Purchases {
			if p.Quantity < 1 {
				errs.add("purchases", "purchase #%d quantity must be at least 1", i+1)
			}
			if p.Price < 0.01 {
				errs.add("purchases", "purchase #%d price must be at least 0.01", i+1)
			}
		}
		if !errs.ok() {
			respondInvalid(w, errs)
			return
		}
		respondData(w, calc.ShareAverage(req.Purchases))
	}
}
