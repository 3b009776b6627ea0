package routes

import (
	"github.com/go-chi/chi/v5"

	"adlaunch/internal/handlers"
	"adlaunch/internal/interfaces"
	"adlaunch/pkg/logger"
)

func RegisterAssetRoutes(router chi.Router, assets interfaces.AssetRepository, store interfaces.AssetStore, log *logger.Logger) {
	assetHandler := handlers.NewAssetHandler(assets, store, log)

	router.Route("/assets", func(r chi.Router) {
		r.Get("/", assetHandler.ListAssets)
		r.Post("/", assetHandler.UploadAssets)
		r.Delete("/{id}", assetHandler.DeleteAsset)
	})
}
