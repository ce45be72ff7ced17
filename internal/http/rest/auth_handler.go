package rest

import (
	"net/http"

	"github.com/resonanse/resonanse_api/internal/model"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

// func (api *API) Register(w http.ResponseWriter, r *http.Request)
// func (api *API) Login(w http.ResponseWriter, r *http.Request)
// func (api *API) Logout(w http.ResponseWriter, r *http.Request)

func (api *API) Register(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	account, status, message, err := api.RegisterAccountHelper(r.Context(), req)
	if status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       account.Info(),
	}
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	account, status, message, err := api.LoginHelper(r.Context(), req)
	if status != values.Success {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       account.Info(),
	}
}

// Logout acknowledges the request. No session or token exists, so
// there is nothing to invalidate.
func (api *API) Logout(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "Logged out successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"message": "Logged out successfully"},
	}
}
