package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mani-django09/new-calc-sub000/internal/metadata"
)

// GET /api/metadata/{calculator}
func MetadataHandler(reg *metadata.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "calculator")
		m, ok := reg.Get(name)
		if !ok {
			respondError(w, http.StatusNotFound, "not_found", "unknown calculator: "+name, nil)
			return
		}
		respondData(w, m)
	}
}

// GET /api/calculators — every registered calculator with its metadata.
func ListCalculatorsHandler(reg *metadata.Registry) http.HandlerFunc {
	type entry struct {
		Name string `json:"name"`
		metadata.Meta
	}
	return func(w http.ResponseWriter, r *http.Request) {
		names := reg.Names()
		out := make([]entry, 0, len(names))
		for _, n := range names {
			m, _ := reg.Get(n)
			out = append(out, entry{Name: n, Meta: m})
		}
		respondData(w, out)
	}
}
