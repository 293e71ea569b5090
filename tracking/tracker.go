package tracking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"transport-admin/cache"
	"transport-admin/events"
	"transport-admin/models"
)

// PingRecorder is the persistence surface the tracker needs.
type PingRecorder interface {
	InsertPing(ctx context.Context, ping *models.LocationPing) error
	InsertAlert(ctx context.Context, alert *models.GeofenceAlert) error
}

// LivePositions mirrors pings into the live cell index.
type LivePositions interface {
	Update(ctx context.Context, ping models.LocationPing) error
}

// Broadcaster pushes a payload to connected dashboard clients.
type Broadcaster interface {
	Broadcast(v interface{})
}

// PingUpdate is what dashboard websocket clients receive per ping.
type PingUpdate struct {
	Ping   models.LocationPing    `json:"ping"`
	Alerts []models.GeofenceAlert `json:"alerts,omitempty"`
}

// Tracker ingests location pings: persist, index, evaluate geofences,
// broadcast. Geofence transitions (outside→inside and back) raise alerts.
type Tracker struct {
	store     PingRecorder
	live      LivePositions
	fences    *GeofenceIndex
	hub       Broadcaster
	publisher events.Publisher

	mu     sync.Mutex
	inside map[int64]map[int64]bool // truck id → geofence ids currently occupied
}

func NewTracker(store PingRecorder, live LivePositions, fences *GeofenceIndex, hub Broadcaster, publisher events.Publisher) *Tracker {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Tracker{
		store:     store,
		live:      live,
		fences:    fences,
		hub:       hub,
		publisher: publisher,
		inside:    make(map[int64]map[int64]bool),
	}
}

// RecordPing processes one ping and returns the geofence alerts it raised.
func (t *Tracker) RecordPing(ctx context.Context, ping *models.LocationPing) ([]models.GeofenceAlert, error) {
	if ping.ID == "" {
		ping.ID = uuid.NewString()
	}
	if ping.PingedAt.IsZero() {
		ping.PingedAt = time.Now().UTC()
	}
	ping.Geohash = cache.Cell(ping.Latitude, ping.Longitude)

	if err := t.store.InsertPing(ctx, ping); err != nil {
		return nil, err
	}

	if t.live != nil {
		if err := t.live.Update(ctx, *ping); err != nil {
			log.Printf("live index update failed for truck %d: %v", ping.TruckID, err)
		}
	}

	alerts := t.evaluateGeofences(ctx, ping)
	for i := range alerts {
		if err := t.store.InsertAlert(ctx, &alerts[i]); err != nil {
			log.Printf("persist geofence alert: %v", err)
		}
		eventType := events.TypeGeofenceEntry
		if alerts[i].AlertType == "exit" {
			eventType = events.TypeGeofenceExit
		}
		if err := t.publisher.Publish(ctx, events.NewEvent(eventType, alerts[i])); err != nil {
			log.Printf("publish geofence event: %v", err)
		}
	}

	if t.hub != nil {
		t.hub.Broadcast(PingUpdate{Ping: *ping, Alerts: alerts})
	}
	return alerts, nil
}

func (t *Tracker) evaluateGeofences(ctx context.Context, ping *models.LocationPing) []models.GeofenceAlert {
	if t.fences == nil {
		return nil
	}

	now := make(map[int64]bool)
	for _, fence := range t.fences.Containing(ping.Latitude, ping.Longitude) {
		now[fence.ID] = true
	}

	t.mu.Lock()
	prev := t.inside[ping.TruckID]
	t.inside[ping.TruckID] = now
	t.mu.Unlock()

	var alerts []models.GeofenceAlert
	for fenceID := range now {
		if !prev[fenceID] {
			alerts = append(alerts, newAlert(fenceID, ping, "entry"))
		}
	}
	for fenceID := range prev {
		if !now[fenceID] {
			alerts = append(alerts, newAlert(fenceID, ping, "exit"))
		}
	}
	return alerts
}

func newAlert(fenceID int64, ping *models.LocationPing, alertType string) models.GeofenceAlert {
	return models.GeofenceAlert{
		ID:         uuid.NewString(),
		GeofenceID: fenceID,
		TruckID:    ping.TruckID,
		AlertType:  alertType,
		Latitude:   ping.Latitude,
		Longitude:  ping.Longitude,
		OccurredAt: ping.PingedAt,
	}
}
