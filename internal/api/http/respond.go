package http

import (
	"encoding/json"
	"net/http"
)

// Every endpoint answers with this envelope: {success:true, data:…} or
// {success:false, error, message} (plus per-field details on validation
// failures).

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is one per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondData(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: v})
}

func respondError(w http.ResponseWriter, status int, code, message string, fields []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: code, Message: message, Fields: fields})
}

func respondBadJSON(w http.ResponseWriter, err error) {
	respondError(w, http.StatusBadRequest, "invalid_request", "bad json: "+err.Error(), nil)
}

func respondInvalid(w http.ResponseWriter, fields []FieldError) {
	respondError(w, http.StatusBadRequest, "validation_failed", "one or more fields failed validation", fields)
}

// respondCalcFailure is the generic 500 for unexpected computation errors.
func respondCalcFailure(w http.ResponseWriter, err error) {
	respondError(w, http.StatusInternalServerError, "calculation_failed", "Calculation failed: "+err.Error(), nil)
}
