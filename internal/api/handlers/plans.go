package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

type PlanHandler struct {
	Travel     ports.TravelTimeProvider
	Candidates ports.CandidateProvider
	Sessions   ports.SessionStore
}

// Plan orchestrates multi-day trip planning for one request.
// It resolves the trip session, validates trip feasibility, runs the
// day-by-day planner and persists the consumed session state.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	origin := spotFromPayload(req.Origin)
	destination := spotFromPayload(req.Destination)
	if origin == nil || destination == nil {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if strings.TrimSpace(req.StartDay) == "" || strings.TrimSpace(req.EndDay) == "" {
		writeError(w, r, http.StatusBadRequest, "start_day and end_day are required")
		return
	}
	if len(req.ActiveTimes) == 0 {
		writeError(w, r, http.StatusBadRequest, "active_times is required")
		return
	}
	theme := domain.Category(strings.TrimSpace(req.Theme))
	if theme == "" {
		writeError(w, r, http.StatusBadRequest, "theme is required")
		return
	}

	windows := make([]domain.DayWindow, 0, len(req.ActiveTimes))
	for _, t := range req.ActiveTimes {
		windows = append(windows, domain.DayWindow{
			DepartureAt: t.DepartureAt,
			ReturnAt:    t.ReturnAt,
		})
	}

	waypoints := make([]*domain.Spot, 0, len(req.Waypoints))
	for i := range req.Waypoints {
		waypoints = append(waypoints, spotFromPayload(&req.Waypoints[i]))
	}

	session, err := h.resolveSession(r, req.SessionID, theme, destination)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			writeError(w, r, http.StatusNotFound, "session not found")
			return
		}
		log.Printf("resolve session failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "candidate lookup failed")
		return
	}

	if pair, ok := h.Travel.(ports.TravelTimePairProvider); ok {
		err := services.ValidateTripInfo(r.Context(), origin, destination, req.StartDay, req.EndDay, windows, pair)
		if errors.Is(err, domain.ErrTooMuchTravel) {
			writeError(w, r, http.StatusUnprocessableEntity, "trip leaves too little activity time")
			return
		}
		if err != nil {
			log.Printf("validate trip failed: %v", err)
			writeError(w, r, http.StatusBadRequest, "invalid trip info")
			return
		}
	}

	svcReq := services.PlanTripRequest{
		Origin:      origin,
		Destination: destination,
		Waypoints:   waypoints,
		ActiveTimes: windows,
		StartDay:    req.StartDay,
		EndDay:      req.EndDay,
		Theme:       theme,
		Transport:   domain.TransportMode(req.Transport),
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, session, h.Travel, h.Candidates)
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		switch {
		case errors.Is(err, domain.ErrTripInfeasible):
			writeError(w, r, http.StatusUnprocessableEntity, "trip is infeasible with the given days")
		case errors.Is(err, domain.ErrPlannerInconsistent):
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		default:
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if err := h.Sessions.Put(r.Context(), session); err != nil {
		log.Printf("persist session failed: %v", err)
	}

	writeJSON(w, r, http.StatusOK, planResponse(session.SessionID, plan))
}

func (h *PlanHandler) resolveSession(
	r *http.Request,
	sessionID string,
	theme domain.Category,
	anchor *domain.Spot,
) (*domain.TripSession, error) {
	if strings.TrimSpace(sessionID) != "" {
		return h.Sessions.Get(r.Context(), sessionID)
	}
	return services.SeedSession(r.Context(), uuid.NewString(), theme, anchor, h.Candidates)
}

func planResponse(sessionID string, plan *domain.TripPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		SessionID: sessionID,
		Transport: string(plan.Transport),
		StartDay:  plan.StartDay,
		EndDay:    plan.EndDay,
		Days:      make([]dto.DayPlanResponse, 0, len(plan.Days)),
	}

	for _, day := range plan.Days {
		d := dto.DayPlanResponse{
			Degraded:     day.Degraded,
			MealsRelaxed: day.MealsRelaxed,
			Records:      make([]dto.VisitRecordResponse, 0, len(day.Records)),
		}
		for _, rec := range day.Records {
			out := dto.VisitRecordResponse{Kind: string(rec.Kind)}
			switch rec.Kind {
			case domain.RecordSpot:
				out.Type = string(rec.Type)
				if rec.Spot != nil {
					p := spotPayload(rec.Spot)
					out.Spot = &p
				}
				if !rec.ArrivedAt.IsZero() {
					t := rec.ArrivedAt
					out.ArrivedAt = &t
				}
				if !rec.DepartureAt.IsZero() {
					t := rec.DepartureAt
					out.DepartureAt = &t
				}
			case domain.RecordTraffic:
				out.Mode = string(rec.Mode)
				if !rec.DepartureAt.IsZero() {
					t := rec.DepartureAt
					out.DepartureAt = &t
				}
				if !rec.ArrivedAt.IsZero() {
					t := rec.ArrivedAt
					out.ArrivedAt = &t
				}
			}
			d.Records = append(d.Records, out)
		}
		res.Days = append(res.Days, d)
	}

	return res
}
