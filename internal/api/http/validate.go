package http

import "fmt"

// fieldErrors accumulates per-field contract violations for a single
// request; calculators run only when the collector stays empty.
type fieldErrors []FieldError

func (f *fieldErrors) add(field, format string, args ...interface{}) {
	*f = append(*f, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f *fieldErrors) requireRange(field string, v, min, max float64) {
	if v < min || v > max {
		f.add(field, "must be between %g and %g", min, max)
	}
}

func (f *fieldErrors) requireMin(field string, v, min float64) {
	if v < min {
		f.add(field, "must be at least %g", min)
	}
}

func (f fieldErrors) ok() bool { return len(f) == 0 }
