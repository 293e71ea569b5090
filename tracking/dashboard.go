package tracking

import (
	"context"
	"time"

	"transport-admin/models"
)

// DashboardProvider produces the fleet telemetry snapshot behind
// GET /api/tracking/dashboard. The fixture and the store-backed
// aggregation are interchangeable.
type DashboardProvider interface {
	Dashboard(ctx context.Context) (*models.DashboardData, error)
}

// StaticProvider serves a hardcoded snapshot after an artificial delay.
// It stands in when no tracking database is configured.
type StaticProvider struct {
	Delay time.Duration
}

func (p *StaticProvider) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now().UTC()
	return &models.DashboardData{
		TotalTrucks:  12,
		ActiveTrucks: 8,
		IdleTrucks:   4,
		RecentLocations: []models.LocationPing{
			{ID: "fixture-1", TruckID: 101, Latitude: 40.7128, Longitude: -74.0060, SpeedKmh: 54, Geohash: "dr5re", PingedAt: now.Add(-2 * time.Minute)},
			{ID: "fixture-2", TruckID: 102, Latitude: 40.7306, Longitude: -73.9352, SpeedKmh: 31, Geohash: "dr5rt", PingedAt: now.Add(-5 * time.Minute)},
			{ID: "fixture-3", TruckID: 103, Latitude: 40.6501, Longitude: -73.9496, SpeedKmh: 0, Geohash: "dr5rk", PingedAt: now.Add(-11 * time.Minute)},
		},
		GeofenceAlerts: []models.GeofenceAlert{
			{ID: "fixture-a1", GeofenceID: 1, TruckID: 101, AlertType: "entry", Latitude: 40.7128, Longitude: -74.0060, OccurredAt: now.Add(-3 * time.Minute)},
			{ID: "fixture-a2", GeofenceID: 2, TruckID: 103, AlertType: "exit", Latitude: 40.6501, Longitude: -73.9496, OccurredAt: now.Add(-9 * time.Minute)},
		},
		GeneratedAt: now,
	}, nil
}

// StoreProvider aggregates the snapshot from persisted pings and alerts.
type StoreProvider struct {
	Store  *Store
	Window time.Duration
}

const recentLimit = 20

func (p *StoreProvider) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	since := time.Now().UTC().Add(-p.Window)

	total, err := p.Store.TruckCount(ctx)
	if err != nil {
		return nil, err
	}
	active, err := p.Store.ActiveTruckCount(ctx, since)
	if err != nil {
		return nil, err
	}
	pings, err := p.Store.RecentPings(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	alerts, err := p.Store.RecentAlerts(ctx, since, recentLimit)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		TotalTrucks:     total,
		ActiveTrucks:    active,
		IdleTrucks:      total - active,
		RecentLocations: pings,
		GeofenceAlerts:  alerts,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
