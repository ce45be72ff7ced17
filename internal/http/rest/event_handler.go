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

func (api *API) EventRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateEvent))
	mux.Method(http.MethodGet, "/", Handler(api.GetAllEvents))
	mux.Method(http.MethodGet, "/{eventID}", Handler(api.GetEvent))
	mux.Method(http.MethodPut, "/{eventID}", Handler(api.UpdateEvent))
	mux.Method(http.MethodDelete, "/{eventID}", Handler(api.DeleteEvent))

	return mux
}

func (api *API) CreateEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateEventRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	event, status, message, err := api.CreateEventHelper(r.Context(), req)
	if status != values.Created {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       event.Info(),
	}
}

// GetAllEvents lists events starting at or after today's midnight.
func (api *API) GetAllEvents(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	events, err := api.ListUpcomingEventsRepo(r.Context(), todayMidnight())
	if err != nil {
		return respondWithError(err, "failed to list events", values.Error, &tc)
	}

	infos := make([]model.EventInfo, 0, len(events))
	for _, event := range events {
		infos = append(infos, event.Info())
	}

	return &ServerResponse{
		Message:    "Events retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       infos,
	}
}

func (api *API) GetEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	event, err := api.GetEventByIDRepo(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Event not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       event.Info(),
	}
}

func (api *API) UpdateEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	var req model.CreateEventRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	event, err := api.UpdateEventRepo(r.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Event not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to update event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       event.Info(),
	}
}

func (api *API) DeleteEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := util.StringToUUID(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	if err := api.DeleteEventRepo(r.Context(), eventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Event not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to delete event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"message": "Event deleted successfully"},
	}
}
