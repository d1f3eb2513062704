package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	// image URLs carry & and = literally
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

func succeed(w http.ResponseWriter, code int, message string, data any) {
	writeEnvelope(w, code, Envelope{Status: true, Message: message, Data: data})
}

func fail(w http.ResponseWriter, code int, message string, errors any) {
	writeEnvelope(w, code, Envelope{Status: false, Message: message, Errors: errors})
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	succeed(w, http.StatusOK, message, data)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	succeed(w, http.StatusCreated, message, data)
}

// ResponseBadRequest carries per-field messages in errors, when there are any.
func ResponseBadRequest(w http.ResponseWriter, message string, errors map[string]string) {
	if len(errors) == 0 {
		fail(w, http.StatusBadRequest, message, nil)
		return
	}
	fail(w, http.StatusBadRequest, message, errors)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, message, nil)
}

// ResponseInternalError never carries detail; the cause goes to the log.
func ResponseInternalError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message, nil)
}

func ResponseUnavailable(w http.ResponseWriter, message string) {
	fail(w, http.StatusServiceUnavailable, message, nil)
}
