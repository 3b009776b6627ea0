package routes

import (
	"github.com/go-chi/chi/v5"

	"adlaunch/internal/handlers"
	"adlaunch/internal/interfaces"
)

func RegisterSettingsRoutes(router chi.Router, settings interfaces.SettingsRepository, meta interfaces.MetaClient) {
	settingsHandler := handlers.NewSettingsHandler(settings, meta)

	router.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsHandler.GetSettings)
		r.Put("/", settingsHandler.UpdateSettings)
		r.Post("/test", settingsHandler.TestConnection)
	})
}
