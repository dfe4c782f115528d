package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mpetrov/portfolio-site-backend/errs"
)

// Responder writes the API's JSON envelope. Every body carries a boolean
// `success`; failures add a human-readable `message`.
type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an error to its status code and failure envelope.
// Anything that is not an *errs.ApiErr is an unclassified infrastructure
// failure: it is logged with its full cause and collapsed to a generic 500
// so internals never reach the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]interface{}{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Err(apiErr.Cause).Str("details", apiErr.Details).Msg(apiErr.Message())
	}

	response := map[string]interface{}{
		"success": false,
		"message": apiErr.Message(),
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a store error with context information before it
// reaches the responder.
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
