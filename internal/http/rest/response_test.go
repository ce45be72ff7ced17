package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

func TestHandlerWritesBareDataOnSuccess(t *testing.T) {
	h := Handler(func(w http.ResponseWriter, r *http.Request) *ServerResponse {
		return &ServerResponse{
			Message:    "ok",
			Status:     values.Success,
			StatusCode: util.StatusCode(values.Success),
			Data:       map[string]string{"name": "resonanse"},
		}
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["name"] != "resonanse" {
		t.Errorf("body = %v; want bare data object", body)
	}
	if _, hasEnvelope := body["detail"]; hasEnvelope {
		t.Error("success body should not carry the error envelope")
	}
}

func TestHandlerWritesErrorEnvelope(t *testing.T) {
	tc := &tracing.Context{RequestID: "test"}
	h := Handler(func(w http.ResponseWriter, r *http.Request) *ServerResponse {
		return respondWithError(nil, "Account not found", values.NotFound, tc)
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.Detail != "Account not found" {
		t.Errorf("detail = %q; want %q", envelope.Detail, "Account not found")
	}
	if envelope.Message != "Account not found" {
		t.Errorf("message = %q; want %q", envelope.Message, "Account not found")
	}
}

func TestRespondWithErrorInternal(t *testing.T) {
	tc := &tracing.Context{RequestID: "test"}

	resp := respondWithError(errors.New("connection refused"), "failed to get account", values.Error, tc)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status code = %d; want 500", resp.StatusCode)
	}
	if resp.Detail != "Internal Server Error" {
		t.Errorf("detail = %q; want %q", resp.Detail, "Internal Server Error")
	}
	if resp.Message != "connection refused" {
		t.Errorf("message = %q; want the raw error text", resp.Message)
	}
}

func TestRespondWithErrorValidation(t *testing.T) {
	tc := &tracing.Context{RequestID: "test"}

	type shape struct {
		Title string `validate:"required"`
	}
	err := util.ValidateStruct(shape{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	resp := respondWithError(err, "validation failed", values.Unprocessable, tc)

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status code = %d; want 422", resp.StatusCode)
	}
	if resp.Detail == "validation failed" {
		t.Error("detail should carry field-level validation detail")
	}
}

func TestHandlerStreamedResponse(t *testing.T) {
	h := Handler(func(w http.ResponseWriter, r *http.Request) *ServerResponse {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{0x01, 0x02})
		return nil
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Body.Bytes(); len(got) != 2 || got[0] != 0x01 {
		t.Errorf("streamed body = %v; want raw bytes", got)
	}
}
