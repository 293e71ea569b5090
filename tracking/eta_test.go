package tracking

import (
	"math"
	"testing"
	"time"
)

func TestValidate_FirstCheckWins(t *testing.T) {
	// Both source_lat and dest_lng invalid: source_lat must be reported.
	req := &ETARequest{SourceLat: 91, SourceLng: 0, DestLat: 0, DestLng: 200}
	err := req.Validate()
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "source_lat" {
		t.Fatalf("field = %q, want source_lat", verr.Field)
	}
}

func TestValidate_Order(t *testing.T) {
	cases := []struct {
		req   ETARequest
		field string
	}{
		{ETARequest{SourceLat: -91}, "source_lat"},
		{ETARequest{SourceLng: 181}, "source_lng"},
		{ETARequest{DestLat: 90.5}, "dest_lat"},
		{ETARequest{DestLng: -180.5}, "dest_lng"},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		verr, ok := err.(*ValidationError)
		if !ok || verr.Field != tc.field {
			t.Fatalf("req %+v: got %v, want field %s", tc.req, err, tc.field)
		}
	}
	ok := ETARequest{SourceLat: 40.7, SourceLng: -74, DestLat: 34, DestLng: -118.2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestComputeETA_NewYorkToLosAngeles(t *testing.T) {
	req := &ETARequest{
		SourceLat: 40.7128, SourceLng: -74.0060,
		DestLat: 34.0522, DestLng: -118.2437,
		TransportMode: "driving",
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	resp, err := ComputeETA(req, now)
	if err != nil {
		t.Fatalf("ComputeETA: %v", err)
	}

	// Standard great-circle result is about 3936 km.
	if math.Abs(resp.DistanceKm-3936) > 1.5 {
		t.Fatalf("distance = %v, want ~3936", resp.DistanceKm)
	}
	if resp.DistanceKm != round2(resp.DistanceKm) {
		t.Fatalf("distance not rounded to 2 decimals: %v", resp.DistanceKm)
	}

	wantDuration := int(math.Round(resp.DistanceKm / 60 * 60))
	if resp.DurationMinutes != wantDuration {
		t.Fatalf("duration = %d, want %d", resp.DurationMinutes, wantDuration)
	}

	wantETA := now.Add(time.Duration(wantDuration) * time.Minute).Format(time.RFC3339)
	if resp.ETA != wantETA {
		t.Fatalf("eta = %s, want %s", resp.ETA, wantETA)
	}
	if resp.RouteSummary.TransportMode != "driving" {
		t.Fatalf("summary mode = %q", resp.RouteSummary.TransportMode)
	}
	if resp.RouteSummary.AverageSpeedKmh <= 0 {
		t.Fatalf("average speed missing: %+v", resp.RouteSummary)
	}
}

func TestComputeETA_UnknownModeFallsBackToDriving(t *testing.T) {
	base := &ETARequest{SourceLat: 40.7128, SourceLng: -74.0060, DestLat: 34.0522, DestLng: -118.2437}

	known := *base
	known.TransportMode = "driving"
	unknown := *base
	unknown.TransportMode = "hovercraft"

	now := time.Now()
	kResp, err := ComputeETA(&known, now)
	if err != nil {
		t.Fatalf("driving: %v", err)
	}
	uResp, err := ComputeETA(&unknown, now)
	if err != nil {
		t.Fatalf("hovercraft: %v", err)
	}
	if kResp.DurationMinutes != uResp.DurationMinutes {
		t.Fatalf("unknown mode duration %d != driving duration %d", uResp.DurationMinutes, kResp.DurationMinutes)
	}
}

func TestComputeETA_ZeroDistance(t *testing.T) {
	req := &ETARequest{SourceLat: 10, SourceLng: 20, DestLat: 10, DestLng: 20, TransportMode: "walking"}
	resp, err := ComputeETA(req, time.Now())
	if err != nil {
		t.Fatalf("ComputeETA: %v", err)
	}
	if resp.DistanceKm != 0 || resp.DurationMinutes != 0 {
		t.Fatalf("same-point trip should be zero, got %+v", resp)
	}
	if resp.RouteSummary.AverageSpeedKmh != 0 {
		t.Fatalf("zero-duration average speed should be 0, got %v", resp.RouteSummary.AverageSpeedKmh)
	}
}

func TestSpeedForMode(t *testing.T) {
	cases := map[string]float64{
		"driving":  60,
		"walking":  5,
		"cycling":  15,
		"transit":  30,
		"teleport": 60,
		"":         60,
	}
	for mode, want := range cases {
		if got := SpeedForMode(mode); got != want {
			t.Fatalf("SpeedForMode(%q) = %v, want %v", mode, got, want)
		}
	}
}
