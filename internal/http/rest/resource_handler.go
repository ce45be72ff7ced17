package rest

import (
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/tracing"
	"github.com/resonanse/resonanse_api/util/values"
)

const maxUploadSize = 32 << 20 // 32 MB

func (api *API) ResourceRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/upload-image", Handler(api.UploadImage))
	mux.Method(http.MethodGet, "/get-image/{imageID}", Handler(api.GetImage))

	return mux
}

func (api *API) UploadImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return respondWithError(err, "unable to parse multipart form", values.BadRequestBody, &tc)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return respondWithError(err, "missing file field", values.BadRequestBody, &tc)
	}
	defer file.Close()

	id, err := api.Deps.Storage.Save(file)
	if err != nil {
		return respondWithError(err, "failed to store image", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Image uploaded successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       map[string]string{"filename": id},
	}
}

// GetImage streams the stored blob verbatim. The blob carries no
// metadata, so the declared content type is a fixed generic one.
func (api *API) GetImage(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	imageID := chi.URLParam(r, "imageID")

	blob, err := api.Deps.Storage.Open(imageID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return respondWithError(nil, "Image not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to open image", values.Error, &tc)
	}
	defer blob.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, blob); err != nil {
		// headers already sent, nothing more to do
		return nil
	}
	return nil
}
