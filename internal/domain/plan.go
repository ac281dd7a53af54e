package domain

import "time"

// TransportMode is how the traveler moves between spots.
type TransportMode string

const (
	ModeCar     TransportMode = "CAR"
	ModeTrain   TransportMode = "TRAIN"
	ModeBus     TransportMode = "BUS"
	ModeWalking TransportMode = "WALKING"
)

// VisitType tags a spot record within a day plan.
type VisitType string

const (
	VisitDeparture   VisitType = "DEPARTURE"
	VisitWaypoint    VisitType = "WAYPOINT"
	VisitDestination VisitType = "DESTINATION"
)

// VisitRecordKind discriminates spot stops from travel segments.
type VisitRecordKind string

const (
	RecordSpot    VisitRecordKind = "SPOT"
	RecordTraffic VisitRecordKind = "TRAFFIC"
)

// VisitRecord is one entry in a day's timeline: either a stop at a spot
// (ArrivedAt/DepartureAt populated per its VisitType) or a traffic segment
// between two stops. Exactly one of Spot/Traffic semantics applies,
// selected by Kind.
type VisitRecord struct {
	Kind        VisitRecordKind
	Spot        *Spot
	Type        VisitType
	ArrivedAt   time.Time
	DepartureAt time.Time
	Mode        TransportMode
}

// DayPlan is the timestamped visiting sequence for one trip day.
// Degraded marks a day for which no admissible route was found; the record
// list is empty in that case. MealsRelaxed marks a route produced by the
// fallback search pass, where meal time windows were not enforced.
type DayPlan struct {
	Records      []VisitRecord
	Degraded     bool
	MealsRelaxed bool
}

// TripPlan aggregates per-day plans with basic trip metadata.
type TripPlan struct {
	Transport TransportMode
	StartDay  string
	EndDay    string
	Days      []DayPlan
}

// DayWindow is a single day's activity window, clock times in "HH:MM" form.
type DayWindow struct {
	DepartureAt string
	ReturnAt    string
}
