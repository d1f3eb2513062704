package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseSuccess_KeepsURLsReadable(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "success", map[string]string{"serviceImage": "https://img.test/a.png?w=1&h=2"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "w=1&h=2")
	assert.JSONEq(t, `{"status":true,"message":"success","data":{"serviceImage":"https://img.test/a.png?w=1&h=2"}}`, rec.Body.String())
}

func TestResponseBadRequest_OmitsEmptyErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "Invalid request body", nil)
	assert.JSONEq(t, `{"status":false,"message":"Invalid request body"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseBadRequest(rec, "Validation failed", map[string]string{"status": "This field is required"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Validation failed","errors":{"status":"This field is required"}}`, rec.Body.String())
}
