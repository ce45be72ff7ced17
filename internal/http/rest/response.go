package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

// ServerResponse is what handlers hand back to the Handler adapter.
// Successful responses serialize Data directly; error responses
// serialize the {detail, message} envelope.
type ServerResponse struct {
	Err        error
	Message    string
	Detail     string
	Status     string
	StatusCode int
	Data       interface{}
}

type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil && tc != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	}

	detail := message
	msg := message
	switch status {
	case values.Error:
		detail = "Internal Server Error"
		if err != nil {
			msg = err.Error()
		}
	case values.Unprocessable:
		if err != nil {
			detail = util.ValidationDetail(err)
		}
	}

	return &ServerResponse{
		Err:        err,
		Message:    msg,
		Detail:     detail,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Printf("failed to write response body: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}

	envelope := errorEnvelope{Detail: message, Message: message}
	if status == values.Error {
		envelope.Detail = "Internal Server Error"
		if err != nil {
			envelope.Message = err.Error()
		}
	}

	body, marshalErr := json.Marshal(envelope)
	if marshalErr != nil {
		http.Error(w, message, util.StatusCode(status))
		return
	}
	writeJSONResponse(w, body, util.StatusCode(status))
}
