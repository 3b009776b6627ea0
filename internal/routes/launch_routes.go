package routes

import (
	"github.com/go-chi/chi/v5"

	"adlaunch/internal/handlers"
	"adlaunch/internal/interfaces"
	"adlaunch/internal/services"
)

func RegisterLaunchRoutes(router chi.Router, launcher *services.LaunchService, settings interfaces.SettingsRepository) {
	launchHandler := handlers.NewLaunchHandler(launcher, settings)

	router.Route("/launch", func(r chi.Router) {
		r.Post("/", launchHandler.StartLaunch)
		r.Get("/status", launchHandler.GetStatus)
	})
}
