package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/errs"
	"github.com/mpetrov/portfolio-site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects returns every project, newest first. Public.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projectListResponse{Success: true, Projects: projects})
	}
}

// createProject inserts a new project row.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, apiErr := decodeProjectRequest(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			ProjectURL:  req.ProjectURL,
		}
		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		if identity, err := ctxGetIdentity(r.Context()); err == nil {
			h.logger.Info().Str("admin", identity.Username).Uint("projectID", project.ID).Msg("project created")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, projectCreatedResponse{Success: true, ProjectID: project.ID})
	}
}

// updateProject overwrites an existing project's fields. Whether the project
// exists is decided by the UPDATE's affected-row count, never a pre-read, so
// concurrent updates to the same id are last-write-wins.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := projectIDParam(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		req, apiErr := decodeProjectRequest(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			ProjectURL:  req.ProjectURL,
		}
		affected, err := h.projectRepo.Update(r.Context(), projectID, &project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, statusResponse{Success: true, Message: "Project updated successfully"})
	}
}

// deleteProject removes a project by id. Deleting an id twice reports 404 on
// the second attempt.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := projectIDParam(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		affected, err := h.projectRepo.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, statusResponse{Success: true, Message: "Project deleted successfully"})
	}
}

// decodeProjectRequest parses and validates the shared create/update body.
// Title, description and image_url must all be non-empty.
func decodeProjectRequest(r *http.Request) (*projectRequest, *errs.ApiErr) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errs.NewBadRequestError("malformed request body")
	}

	switch {
	case req.Title == "":
		return nil, errs.NewMissingRequiredFieldError("title")
	case req.Description == "":
		return nil, errs.NewMissingRequiredFieldError("description")
	case req.ImageURL == "":
		return nil, errs.NewMissingRequiredFieldError("image_url")
	}

	return &req, nil
}

func projectIDParam(r *http.Request) (uint, *errs.ApiErr) {
	idStr := chi.URLParam(r, "projectID")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid projectID")
	}
	return uint(id), nil
}
