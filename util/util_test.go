package util

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		status   string
		expected int
	}{
		{"Success", values.Success, http.StatusOK},
		{"Created", values.Created, http.StatusCreated},
		{"Error", values.Error, http.StatusInternalServerError},
		{"BadRequestBody", values.BadRequestBody, http.StatusBadRequest},
		{"Unprocessable", values.Unprocessable, http.StatusUnprocessableEntity},
		{"NotAllowed", values.NotAllowed, http.StatusForbidden},
		{"Conflict", values.Conflict, http.StatusConflict},
		{"NotFound", values.NotFound, http.StatusNotFound},
		{"NotAuthorised", values.NotAuthorised, http.StatusUnauthorized},
		{"Unknown", "anything-else", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.expected {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.expected)
			}
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	tc := &tracing.Context{RequestID: "test"}

	var target struct {
		Name string `json:"name"`
	}
	body := io.NopCloser(strings.NewReader(`{"name": "resonanse"}`))
	if err := DecodeJSONBody(tc, body, &target); err != nil {
		t.Fatalf("DecodeJSONBody returned error %v", err)
	}
	if target.Name != "resonanse" {
		t.Errorf("decoded name = %q; want %q", target.Name, "resonanse")
	}

	bad := io.NopCloser(strings.NewReader(`{"name":`))
	if err := DecodeJSONBody(tc, bad, &target); err == nil {
		t.Error("expected error for malformed body, got nil")
	}
}

func TestValidateStruct(t *testing.T) {
	type registerShape struct {
		Username string `validate:"required"`
		Password string `validate:"required"`
	}

	if err := ValidateStruct(registerShape{Username: "alice", Password: "secret"}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}

	err := ValidateStruct(registerShape{Username: "alice"})
	if err == nil {
		t.Fatal("expected validation error for missing password")
	}

	detail := ValidationDetail(err)
	if !strings.Contains(detail, "Password") || !strings.Contains(detail, "required") {
		t.Errorf("ValidationDetail = %q; want field-level detail for Password", detail)
	}
}
