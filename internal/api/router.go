package api

import (
	"net/http"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.SpotRepository,
	travel ports.TravelTimeProvider,
	candidates ports.CandidateProvider,
	sessions ports.SessionStore,
) http.Handler {
	mux := http.NewServeMux()

	spotHandler := &handlers.SpotHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Travel:     travel,
		Candidates: candidates,
		Sessions:   sessions,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/spots", spotHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
