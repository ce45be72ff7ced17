package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resonanse/resonanse_api/config"
	deps "github.com/resonanse/resonanse_api/internal/debs"
	"github.com/resonanse/resonanse_api/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	if resp == nil {
		// handler streamed the response itself
		return
	}

	if resp.StatusCode >= http.StatusBadRequest {
		body, err := json.Marshal(errorEnvelope{Detail: resp.Detail, Message: resp.Message})
		if err != nil {
			writeErrorResponse(w, err, values.Error, "unable to marshal server response")
			return
		}
		writeJSONResponse(w, body, resp.StatusCode)
		return
	}

	body, err := json.Marshal(resp.Data)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, body, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	DB     *pgxpool.Pool
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{api.Config.CorsAllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	mux.Use(RequestTracing)
	mux.Use(RecoverPanic)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message": "Hello, World!"}`))
		},
	)

	mux.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/register", Handler(api.Register))
		r.Method(http.MethodPost, "/login", Handler(api.Login))
		r.Method(http.MethodPost, "/logout", Handler(api.Logout))

		r.Mount("/accounts", api.AccountRoutes())
		r.Mount("/events", api.EventRoutes())
		r.Mount("/communities", api.CommunityRoutes())
		r.Mount("/resources", api.ResourceRoutes())
		r.Mount("/feed", api.FeedRoutes())
	})

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	return a.Server.Shutdown(ctx)
}
