package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrov/portfolio-site-backend/auth"
	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	adminRepo *database.AdminRepo
	issuer    *auth.TokenIssuer
}

func newAuthHandler(adminRepo *database.AdminRepo, issuer *auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		adminRepo: adminRepo,
		issuer:    issuer,
	}
}

// login exchanges an admin credential for a signed bearer token. An unknown
// username and a wrong password produce the same response and the same log
// line, so neither can be used to probe which usernames exist.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		admin, err := h.adminRepo.FindByUsername(r.Context(), req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin", err))
			return
		}

		if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
			h.logger.Warn().Str("username", req.Username).Msg("invalid login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.issuer.Issue(admin.ID, admin.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("sign", "token", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Success: true, Token: token})
	}
}
