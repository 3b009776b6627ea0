package routes

import (
	"github.com/go-chi/chi/v5"

	"adlaunch/internal/handlers"
	"adlaunch/internal/interfaces"
)

func RegisterMetaRoutes(router chi.Router, settings interfaces.SettingsRepository, meta interfaces.MetaClient) {
	metaHandler := handlers.NewMetaHandler(settings, meta)

	router.Route("/meta", func(r chi.Router) {
		r.Get("/adaccounts", metaHandler.ListAdAccounts)
		r.Get("/pages", metaHandler.ListPages)
		r.Get("/pages/{pageID}/instagram", metaHandler.ListInstagramAccounts)
		r.Get("/pixels", metaHandler.ListPixels)
		r.Get("/campaigns", metaHandler.ListCampaigns)
		r.Get("/campaigns/{campaignID}/adsets", metaHandler.ListAdSets)
		r.Get("/adcreatives", metaHandler.ListAdCreatives)
		r.Get("/insights", metaHandler.GetInsights)
		r.Get("/regions", metaHandler.SearchRegions)
	})
}
