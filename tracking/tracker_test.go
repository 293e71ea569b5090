package tracking

import (
	"context"
	"testing"
	"time"

	"transport-admin/cache"
	"transport-admin/events"
	"transport-admin/models"
)

type memRecorder struct {
	pings  []models.LocationPing
	alerts []models.GeofenceAlert
}

func (m *memRecorder) InsertPing(ctx context.Context, ping *models.LocationPing) error {
	m.pings = append(m.pings, *ping)
	return nil
}

func (m *memRecorder) InsertAlert(ctx context.Context, alert *models.GeofenceAlert) error {
	m.alerts = append(m.alerts, *alert)
	return nil
}

type memPublisher struct {
	published []events.Event
}

func (m *memPublisher) Publish(ctx context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

type memBroadcaster struct {
	updates []interface{}
}

func (m *memBroadcaster) Broadcast(v interface{}) {
	m.updates = append(m.updates, v)
}

func TestTracker_RecordPingPersistsAndStamps(t *testing.T) {
	rec := &memRecorder{}
	tracker := NewTracker(rec, nil, NewGeofenceIndex(), nil, nil)

	ping := &models.LocationPing{TruckID: 7, Latitude: 51.5, Longitude: -0.12, SpeedKmh: 40}
	if _, err := tracker.RecordPing(context.Background(), ping); err != nil {
		t.Fatalf("RecordPing: %v", err)
	}
	if ping.ID == "" || ping.Geohash == "" || ping.PingedAt.IsZero() {
		t.Fatalf("ping not stamped: %+v", ping)
	}
	if len(rec.pings) != 1 {
		t.Fatalf("expected 1 persisted ping, got %d", len(rec.pings))
	}
}

func TestTracker_RecordPingWithoutLiveIndex(t *testing.T) {
	// Without redis the live index is a typed nil pointer; pings must
	// still be recorded instead of panicking on the interface.
	rec := &memRecorder{}
	tracker := NewTracker(rec, (*cache.LiveIndex)(nil), NewGeofenceIndex(), nil, nil)

	ping := &models.LocationPing{TruckID: 3, Latitude: 10, Longitude: 10}
	if _, err := tracker.RecordPing(context.Background(), ping); err != nil {
		t.Fatalf("RecordPing: %v", err)
	}
	if len(rec.pings) != 1 {
		t.Fatalf("expected 1 persisted ping, got %d", len(rec.pings))
	}
}

func TestTracker_GeofenceEntryAndExit(t *testing.T) {
	fences := NewGeofenceIndex()
	fences.Reload([]models.Geofence{
		{ID: 5, Name: "depot", CenterLat: 51.5074, CenterLng: -0.1278, RadiusKm: 2, IsActive: true},
	})
	rec := &memRecorder{}
	pub := &memPublisher{}
	hub := &memBroadcaster{}
	tracker := NewTracker(rec, nil, fences, hub, pub)

	ctx := context.Background()
	at := time.Now().UTC()

	// Outside the fence: no alert.
	alerts, err := tracker.RecordPing(ctx, &models.LocationPing{TruckID: 1, Latitude: 48.85, Longitude: 2.35, PingedAt: at})
	if err != nil {
		t.Fatalf("RecordPing: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("unexpected alerts outside fence: %+v", alerts)
	}

	// Entering raises exactly one entry alert.
	alerts, err = tracker.RecordPing(ctx, &models.LocationPing{TruckID: 1, Latitude: 51.5074, Longitude: -0.1278, PingedAt: at})
	if err != nil {
		t.Fatalf("RecordPing: %v", err)
	}
	if len(alerts) != 1 || alerts[0].AlertType != "entry" || alerts[0].GeofenceID != 5 {
		t.Fatalf("want one entry alert, got %+v", alerts)
	}

	// Staying inside raises nothing.
	alerts, _ = tracker.RecordPing(ctx, &models.LocationPing{TruckID: 1, Latitude: 51.508, Longitude: -0.128, PingedAt: at})
	if len(alerts) != 0 {
		t.Fatalf("no alert expected while inside, got %+v", alerts)
	}

	// Leaving raises an exit alert.
	alerts, _ = tracker.RecordPing(ctx, &models.LocationPing{TruckID: 1, Latitude: 48.85, Longitude: 2.35, PingedAt: at})
	if len(alerts) != 1 || alerts[0].AlertType != "exit" {
		t.Fatalf("want one exit alert, got %+v", alerts)
	}

	if len(rec.alerts) != 2 {
		t.Fatalf("expected 2 persisted alerts, got %d", len(rec.alerts))
	}
	if len(pub.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(pub.published))
	}
	if pub.published[0].Type != events.TypeGeofenceEntry || pub.published[1].Type != events.TypeGeofenceExit {
		t.Fatalf("unexpected event types: %s, %s", pub.published[0].Type, pub.published[1].Type)
	}
	if len(hub.updates) != 4 {
		t.Fatalf("every ping should be broadcast, got %d", len(hub.updates))
	}
}

func TestTracker_PerTruckOccupancy(t *testing.T) {
	fences := NewGeofenceIndex()
	fences.Reload([]models.Geofence{
		{ID: 1, CenterLat: 0, CenterLng: 0, RadiusKm: 5, IsActive: true},
	})
	tracker := NewTracker(&memRecorder{}, nil, fences, nil, nil)

	ctx := context.Background()
	a1, _ := tracker.RecordPing(ctx, &models.LocationPing{TruckID: 1, Latitude: 0, Longitude: 0})
	a2, _ := tracker.RecordPing(ctx, &models.LocationPing{TruckID: 2, Latitude: 0, Longitude: 0})
	if len(a1) != 1 || len(a2) != 1 {
		t.Fatalf("each truck gets its own entry alert: %+v / %+v", a1, a2)
	}
}
