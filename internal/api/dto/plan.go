package dto

import "time"

type DayWindowPayload struct {
	DepartureAt string `json:"departure_at"`
	ReturnAt    string `json:"return_at"`
}

type PlanRequest struct {
	SessionID   string             `json:"session_id"`
	Origin      *SpotPayload       `json:"origin"`
	Destination *SpotPayload       `json:"destination"`
	Waypoints   []SpotPayload      `json:"waypoints"`
	ActiveTimes []DayWindowPayload `json:"active_times"`
	StartDay    string             `json:"start_day"`
	EndDay      string             `json:"end_day"`
	Theme       string             `json:"theme"`
	Transport   string             `json:"transport"`
}

type VisitRecordResponse struct {
	Kind        string       `json:"kind"`
	Type        string       `json:"type,omitempty"`
	Spot        *SpotPayload `json:"spot,omitempty"`
	ArrivedAt   *time.Time   `json:"arrived_at,omitempty"`
	DepartureAt *time.Time   `json:"departure_at,omitempty"`
	Mode        string       `json:"mode,omitempty"`
}

type DayPlanResponse struct {
	Degraded     bool                  `json:"degraded"`
	MealsRelaxed bool                  `json:"meals_relaxed"`
	Records      []VisitRecordResponse `json:"records"`
}

type PlanResponse struct {
	SessionID string            `json:"session_id"`
	Transport string            `json:"transport"`
	StartDay  string            `json:"start_day"`
	EndDay    string            `json:"end_day"`
	Days      []DayPlanResponse `json:"days"`
}
