package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/errs"
	"github.com/mpetrov/portfolio-site-backend/models"
)

// emailPattern is a syntactic check only: something before the @, a domain,
// a dot. Deliverability is not this system's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newContactHandler(messageRepo *database.MessageRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

// submitMessage accepts a public contact-form submission. The timestamp is
// server-assigned; the row is append-only from here on.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		switch {
		case req.Name == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case req.Email == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		case req.Message == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if !emailPattern.MatchString(req.Email) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}

		message := models.ContactMessage{
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Timestamp: time.Now(),
		}
		if err := h.messageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, statusResponse{Success: true, Message: "Message sent successfully!"})
	}
}

// getAllMessages returns every contact message, most recent first. Admin only.
func (h contactHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		if messages == nil {
			messages = []*models.ContactMessage{}
		}

		h.responder.WriteJSON(w, messageListResponse{Success: true, Messages: messages})
	}
}
