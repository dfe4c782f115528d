package api

import (
	"github.com/mpetrov/portfolio-site-backend/auth"
	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, issuer *auth.TokenIssuer, imageStore *services.ImageStore) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.AdminRepo(), issuer),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		contactHandler: newContactHandler(database.MessageRepo()),
		uploadHandler:  newUploadHandler(imageStore),
	}
}
