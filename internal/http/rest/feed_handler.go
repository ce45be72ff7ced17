package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/resonanse/resonanse_api/internal/http/kudago"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

func (api *API) FeedRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/events", Handler(api.FetchFeedEvents))

	return mux
}

// FetchFeedEvents proxies the third-party events catalog: set query
// parameters are forwarded, the raw upstream body comes back as-is.
func (api *API) FetchFeedEvents(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	params := feedParamsFromQuery(r.URL.Query())

	body, statusCode, err := api.Deps.KudaGo.FetchEvents(r.Context(), params)
	if err != nil {
		return respondWithError(err, "failed to fetch events feed", values.Error, &tc)
	}

	writeJSONResponse(w, body, statusCode)
	return nil
}

func feedParamsFromQuery(q url.Values) kudago.EventsParams {
	params := kudago.EventsParams{
		Lang:       q.Get("lang"),
		Fields:     q.Get("fields"),
		Expand:     q.Get("expand"),
		OrderBy:    q.Get("order_by"),
		TextFormat: kudago.TextFormat(q.Get("text_format")),
		IDs:        q.Get("ids"),
		Location:   kudago.Location(q.Get("location")),
		Categories: q.Get("categories"),
	}

	params.Page = queryInt(q, "page")
	params.PageSize = queryInt(q, "page_size")
	params.Radius = queryInt(q, "radius")
	params.Lon = queryFloat(q, "lon")
	params.Lat = queryFloat(q, "lat")

	if raw := q.Get("is_free"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			params.IsFree = &v
		}
	}
	if ts := queryInt(q, "actual_since"); ts != nil {
		params.ActualSince = time.Unix(int64(*ts), 0)
	}
	if ts := queryInt(q, "actual_until"); ts != nil {
		params.ActualUntil = time.Unix(int64(*ts), 0)
	}

	return params
}

func queryInt(q url.Values, key string) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(q url.Values, key string) *float64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
