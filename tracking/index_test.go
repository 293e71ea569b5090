package tracking

import (
	"testing"

	"transport-admin/models"
)

func TestGeofenceIndex_Containment(t *testing.T) {
	idx := NewGeofenceIndex()
	idx.Reload([]models.Geofence{
		{ID: 1, Name: "depot", CenterLat: 51.5074, CenterLng: -0.1278, RadiusKm: 2, IsActive: true},
		{ID: 2, Name: "port", CenterLat: 51.9, CenterLng: 0.5, RadiusKm: 1, IsActive: true},
		{ID: 3, Name: "disabled", CenterLat: 51.5074, CenterLng: -0.1278, RadiusKm: 50, IsActive: false},
	})

	// ~1 km east of the depot center: inside fence 1 only.
	hits := idx.Containing(51.5074, -0.1134)
	if len(hits) != 1 || hits[0].ID != 1 {
		t.Fatalf("hits = %+v, want fence 1 only", hits)
	}

	// Far from everything.
	if hits := idx.Containing(48.8566, 2.3522); len(hits) != 0 {
		t.Fatalf("paris should match nothing, got %+v", hits)
	}
}

func TestGeofenceIndex_CornerOfBoxOutsideCircle(t *testing.T) {
	idx := NewGeofenceIndex()
	idx.Reload([]models.Geofence{
		{ID: 1, CenterLat: 0, CenterLng: 0, RadiusKm: 10, IsActive: true},
	})

	// A point inside the bounding box but outside the circle: the box
	// corner sits at ~sqrt(2)*10 km from center.
	cornerLat := 10.0/kmPerDegreeLat - 0.001
	cornerLng := 10.0/kmPerDegreeLat - 0.001
	if hits := idx.Containing(cornerLat, cornerLng); len(hits) != 0 {
		t.Fatalf("box corner must fail the haversine check, got %+v", hits)
	}

	// Dead center is a hit.
	if hits := idx.Containing(0, 0); len(hits) != 1 {
		t.Fatalf("center must be inside, got %+v", hits)
	}
}

func TestGeofenceIndex_ReloadReplaces(t *testing.T) {
	idx := NewGeofenceIndex()
	idx.Reload([]models.Geofence{{ID: 1, CenterLat: 0, CenterLng: 0, RadiusKm: 5, IsActive: true}})
	if len(idx.Containing(0, 0)) != 1 {
		t.Fatalf("expected fence before reload")
	}
	idx.Reload(nil)
	if len(idx.Containing(0, 0)) != 0 {
		t.Fatalf("reload with no fences should clear the index")
	}
}
