package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/internal/model"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

func (api *API) AccountRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/{accountID}", Handler(api.GetAccount))
	mux.Method(http.MethodPut, "/{accountID}", Handler(api.UpdateAccount))
	mux.Method(http.MethodDelete, "/{accountID}", Handler(api.DeleteAccount))

	return mux
}

func (api *API) GetAccount(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	accountID, err := util.StringToUUID(chi.URLParam(r, "accountID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	account, err := api.GetAccountByIDRepo(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Account not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get account", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Account retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       account.Info(),
	}
}

func (api *API) UpdateAccount(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	accountID, err := util.StringToUUID(chi.URLParam(r, "accountID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	var req model.UpdateAccountRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	account, err := api.UpdateAccountRepo(r.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Account not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to update account", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Account updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       account.Info(),
	}
}

func (api *API) DeleteAccount(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	accountID, err := util.StringToUUID(chi.URLParam(r, "accountID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	if err := api.DeleteAccountRepo(r.Context(), accountID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Account not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to delete account", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Account deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"message": "Account deleted successfully"},
	}
}
