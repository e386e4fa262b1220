package calc

// PurchaseEntry is one stock purchase lot; quantity and price are positive
// per the input contract.
type PurchaseEntry struct {
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// PurchaseBreakdown is one lot of the result with its 1-based index.
type PurchaseBreakdown struct {
	Purchase   int     `json:"purchase"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Investment float64 `json:"investment"`
}

type ShareAverageResult struct {
	TotalShares     float64             `json:"totalShares"`
	TotalInvestment float64             `json:"totalInvestment"`
	AveragePrice    float64             `json:"averagePrice"`
	Breakdown       []PurchaseBreakdown `json:"breakdown"`
}

// ShareAverage computes the volume-weighted average purchase price over at
// least one lot.
func ShareAverage(purchases []PurchaseEntry) ShareAverageResult {
	var shares, invested float64
	breakdown := make([]PurchaseBreakdown, 0, len(purchases))
	for i, p := range purchases {
		cost := p.Quantity * p.Price
		shares += p.Quantity
		invested += cost
		breakdown = append(breakdown, PurchaseBreakdown{
			Purchase:   i + 1,
			Quantity:   p.Quantity,
			Price:      p.Price,
			Investment: Round2(cost),
		})
	}
	return ShareAverageResult{
		TotalShares:     shares,
		TotalInvestment: Round2(invested),
		AveragePrice:    Round2(invested / shares),
		Breakdown:       breakdown,
	}
}
