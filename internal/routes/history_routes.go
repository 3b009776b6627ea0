package routes

import (
	"github.com/go-chi/chi/v5"

	"adlaunch/internal/handlers"
	"adlaunch/internal/interfaces"
)

func RegisterHistoryRoutes(router chi.Router, history interfaces.HistoryRepository) {
	historyHandler := handlers.NewHistoryHandler(history)

	router.Get("/history", historyHandler.ListHistory)
}
