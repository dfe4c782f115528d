package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrov/portfolio-site-backend/errs"
	"github.com/mpetrov/portfolio-site-backend/services"
)

// multipartOverhead is headroom on top of the file cap for multipart
// boundaries and part headers.
const multipartOverhead = 64 * 1024

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	imageStore *services.ImageStore
}

func newUploadHandler(imageStore *services.ImageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		imageStore: imageStore,
	}
}

// uploadProjectImage accepts a multipart upload in the "project_image" field
// and stores it through the ImageStore. The whole request body is bounded a
// little above the file cap; the store enforces the exact per-file limit.
func (h uploadHandler) uploadProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+multipartOverhead)

		if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(services.MaxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}

		file, header, err := r.FormFile("project_image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}
		defer file.Close()

		imageURL, err := h.imageStore.Store(file, header.Filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, uploadResponse{Success: true, ImageURL: imageURL})
	}
}
