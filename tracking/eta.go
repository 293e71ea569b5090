package tracking

import (
	"math"
	"time"
)

// EarthRadiusKm is Earth's radius for the Haversine calculation.
const EarthRadiusKm = 6371.0

// Average speeds per transport mode, km/h.
var modeSpeeds = map[string]float64{
	"driving": 60,
	"walking": 5,
	"cycling": 15,
	"transit": 30,
}

const defaultMode = "driving"

// ETARequest is the body of POST /api/tracking/eta.
type ETARequest struct {
	SourceLat     float64 `json:"source_lat"`
	SourceLng     float64 `json:"source_lng"`
	DestLat       float64 `json:"dest_lat"`
	DestLng       float64 `json:"dest_lng"`
	TransportMode string  `json:"transport_mode"`
}

type RouteSummary struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	TransportMode   string  `json:"transport_mode"`
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
}

type ETAResponse struct {
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes int          `json:"duration_minutes"`
	ETA             string       `json:"eta"`
	RouteSummary    RouteSummary `json:"route_summary"`
}

// ValidationError names the first coordinate field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks coordinates in a fixed order; the first failing check
// wins.
func (r *ETARequest) Validate() error {
	if r.SourceLat < -90 || r.SourceLat > 90 {
		return &ValidationError{Field: "source_lat", Message: "source_lat must be between -90 and 90"}
	}
	if r.SourceLng < -180 || r.SourceLng > 180 {
		return &ValidationError{Field: "source_lng", Message: "source_lng must be between -180 and 180"}
	}
	if r.DestLat < -90 || r.DestLat > 90 {
		return &ValidationError{Field: "dest_lat", Message: "dest_lat must be between -90 and 90"}
	}
	if r.DestLng < -180 || r.DestLng > 180 {
		return &ValidationError{Field: "dest_lng", Message: "dest_lng must be between -180 and 180"}
	}
	return nil
}

// HaversineKm calculates the great-circle distance between two points in
// kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// SpeedForMode returns the mode's average speed; unrecognized modes fall
// back to driving.
func SpeedForMode(mode string) float64 {
	if speed, ok := modeSpeeds[mode]; ok {
		return speed
	}
	return modeSpeeds[defaultMode]
}

// ComputeETA validates the request and produces the distance, duration
// estimate and arrival timestamp relative to now.
func ComputeETA(req *ETARequest, now time.Time) (*ETAResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	distance := round2(HaversineKm(req.SourceLat, req.SourceLng, req.DestLat, req.DestLng))
	speed := SpeedForMode(req.TransportMode)
	duration := int(math.Round(distance / speed * 60))
	eta := now.Add(time.Duration(duration) * time.Minute)

	avgSpeed := 0.0
	if duration > 0 {
		avgSpeed = round1(distance / (float64(duration) / 60))
	}

	return &ETAResponse{
		DistanceKm:      distance,
		DurationMinutes: duration,
		ETA:             eta.Format(time.RFC3339),
		RouteSummary: RouteSummary{
			DistanceKm:      distance,
			DurationMinutes: duration,
			TransportMode:   req.TransportMode,
			AverageSpeedKmh: avgSpeed,
		},
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
