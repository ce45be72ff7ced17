package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/internal/model"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

func (api *API) CommunityRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateCommunity))
	mux.Method(http.MethodGet, "/", Handler(api.GetAllCommunities))
	mux.Method(http.MethodGet, "/{communityID}", Handler(api.GetCommunity))
	mux.Method(http.MethodPut, "/{communityID}", Handler(api.UpdateCommunity))
	mux.Method(http.MethodDelete, "/{communityID}", Handler(api.DeleteCommunity))

	return mux
}

func (api *API) CreateCommunity(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateCommunityRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	community := model.Community{
		ID:          util.GenerateUUID(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Private:     req.Private,
		ChatLink:    req.ChatLink,
		CreatorID:   req.CreatorID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := api.CreateCommunityRepo(r.Context(), community); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return respondWithError(err, "Referenced account does not exist", values.Unprocessable, &tc)
		}
		return respondWithError(err, "failed to create community", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Community created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       community.Info(),
	}
}

func (api *API) GetAllCommunities(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communities, err := api.ListCommunitiesRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list communities", values.Error, &tc)
	}

	infos := make([]model.CommunityInfo, 0, len(communities))
	for _, community := range communities {
		infos = append(infos, community.Info())
	}

	return &ServerResponse{
		Message:    "Communities retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       infos,
	}
}

func (api *API) GetCommunity(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	community, err := api.GetCommunityByIDRepo(r.Context(), communityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Community not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get community", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Community retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       community.Info(),
	}
}

func (api *API) UpdateCommunity(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	var req model.CreateCommunityRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.Unprocessable, &tc)
	}

	community, err := api.UpdateCommunityRepo(r.Context(), communityID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Community not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to update community", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Community updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       community.Info(),
	}
}

func (api *API) DeleteCommunity(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	communityID, err := util.StringToUUID(chi.URLParam(r, "communityID"))
	if err != nil {
		return respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
	}

	if err := api.DeleteCommunityRepo(r.Context(), communityID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondWithError(nil, "Community not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to delete community", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Community deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"message": "Community deleted successfully"},
	}
}
