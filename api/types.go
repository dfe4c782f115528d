package api

import "github.com/mpetrov/portfolio-site-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	contactHandler contactHandler
	uploadHandler  uploadHandler
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type projectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	ProjectURL  *string `json:"project_url,omitempty"`
}

type projectListResponse struct {
	Success  bool              `json:"success"`
	Projects []*models.Project `json:"projects"`
}

type projectCreatedResponse struct {
	Success   bool `json:"success"`
	ProjectID uint `json:"project_id"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type messageListResponse struct {
	Success  bool                     `json:"success"`
	Messages []*models.ContactMessage `json:"messages"`
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
